/*
 * Copyright 2025 cubos.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerReturnsSameInstance(t *testing.T) {
	a := NewLogger("REGISTRY-TEST")
	b := NewLogger("REGISTRY-TEST")
	assert.Same(t, a, b)

	other := NewLogger("REGISTRY-OTHER")
	assert.NotSame(t, a, other)
}

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("ENV_LEVEL_TEST_LOG_LEVEL", "debug")
	l := NewLogger("ENV-LEVEL-TEST")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("LEVEL-TEST")
	SetLoggerLevel("LEVEL-TEST", "warn")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	// Unknown levels leave the logger untouched.
	SetLoggerLevel("LEVEL-TEST", "loud")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}

func TestPrefixFormatter(t *testing.T) {
	f := &prefixFormatter{name: "FMT"}
	entry := &logrus.Entry{
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "ready",
		Data:    logrus.Fields{"b": 2, "a": 1},
	}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02 03:04:05.000 INFO  [FMT] ready a=1 b=2\n", string(out))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("ENV_STRING_TEST", " value ")
	assert.Equal(t, "value", EnvDefaultString("ENV_STRING_TEST", "def"))
	assert.Equal(t, "def", EnvDefaultString("ENV_STRING_MISSING", "def"))

	t.Setenv("ENV_BOOL_TEST", "yes")
	assert.True(t, EnvDefaultBool("ENV_BOOL_TEST", false))
	t.Setenv("ENV_BOOL_TEST", "off")
	assert.False(t, EnvDefaultBool("ENV_BOOL_TEST", true))
	assert.True(t, EnvDefaultBool("ENV_BOOL_MISSING", true))
}

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
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the logrus logger this module hands out.
type Logger = logrus.Logger

var (
	loggerRegistryMu sync.RWMutex
	loggerRegistry   = map[string]*logrus.Logger{}
)

// NewLogger returns the named logger, creating it on first use. The level
// comes from <NAME>_LOG_LEVEL, then LOG_LEVEL, then defaults to info.
func NewLogger(name string) *logrus.Logger {
	loggerRegistryMu.RLock()
	l, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if ok {
		return l
	}

	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if l, ok := loggerRegistry[name]; ok {
		return l
	}

	l = logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&prefixFormatter{name: name})
	l.SetLevel(levelFromEnv(name))
	loggerRegistry[name] = l
	return l
}

// SetLoggerLevel changes the level of the named logger, creating it if
// needed. Unknown level strings leave the logger untouched.
func SetLoggerLevel(name, level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return
	}
	NewLogger(name).SetLevel(parsed)
}

func levelFromEnv(name string) logrus.Level {
	key := strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_LOG_LEVEL"
	raw := EnvDefaultString(key, EnvDefaultString("LOG_LEVEL", "info"))
	if parsed, err := logrus.ParseLevel(strings.ToLower(raw)); err == nil {
		return parsed
	}
	return logrus.InfoLevel
}

// prefixFormatter renders "2006-01-02 15:04:05.000 LEVEL [NAME] msg k=v".
type prefixFormatter struct {
	name string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(e.Time.Format("2006-01-02 15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(fmt.Sprintf("%-5s", strings.ToUpper(e.Level.String())))
	b.WriteString(" [")
	b.WriteString(f.name)
	b.WriteString("] ")
	b.WriteString(e.Message)

	if len(e.Data) > 0 {
		keys := make([]string, 0, len(e.Data))
		for k := range e.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, e.Data[k]))
		}
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// EnvDefaultString returns the environment value for key, or def when the
// variable is unset or empty.
func EnvDefaultString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// EnvDefaultBool returns the boolean environment value for key, or def when
// the variable is unset or unparsable.
func EnvDefaultBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

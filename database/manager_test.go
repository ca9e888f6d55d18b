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

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(name string) *Config {
	cfg := DefaultConfig()
	cfg.Type = "sqlite"
	cfg.DSN = "file:" + name + "?mode=memory&cache=shared"
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1
	cfg.ConnMaxLifetime = 0
	cfg.ConnMaxIdleTime = 0
	return cfg
}

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager(sqliteConfig(t.Name()))
	ctx := context.Background()

	require.NoError(t, manager.Connect(ctx))
	require.NotNil(t, manager.DB())
	require.NotNil(t, manager.SQLDB())
	require.NoError(t, manager.Ping(ctx))

	stats := manager.Stats()
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.MaxOpenConns)

	require.NoError(t, manager.Disconnect())
	assert.Nil(t, manager.DB())
	assert.Error(t, manager.Ping(ctx))
}

func TestManagerConnectIsIdempotent(t *testing.T) {
	manager := NewManager(sqliteConfig(t.Name()))
	ctx := context.Background()

	require.NoError(t, manager.Connect(ctx))
	defer func() { _ = manager.Disconnect() }()

	db := manager.DB()
	require.NoError(t, manager.Connect(ctx))
	assert.Same(t, db, manager.DB())
}

func TestManagerHealthCheck(t *testing.T) {
	manager := NewManager(sqliteConfig(t.Name()))
	ctx := context.Background()

	status := manager.HealthCheck(ctx)
	require.NotNil(t, status)
	assert.False(t, status.Healthy)
	assert.False(t, status.Connected)

	require.NoError(t, manager.Connect(ctx))
	defer func() { _ = manager.Disconnect() }()

	status = manager.HealthCheck(ctx)
	require.NotNil(t, status)
	assert.True(t, status.Healthy)
	assert.True(t, status.Connected)
	assert.Empty(t, status.LastError)
	assert.False(t, status.LastCheckTime.IsZero())
	assert.GreaterOrEqual(t, status.ResponseTime, time.Duration(0))
}

func TestManagerRejectsUnknownEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = "oracle"
	manager := NewManager(cfg)
	assert.Error(t, manager.Connect(context.Background()))
}

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
	"fmt"
	"sync"

	"github.com/uptrace/bun"
)

var (
	globalMu      sync.RWMutex
	globalManager Manager
)

// Init connects the package-level database from cfg and returns its Bun
// handle. Later calls replace the previous connection.
func Init(cfg *Config) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	manager := NewManager(cfg)
	manager.SetLogger(GetLogger())
	if err := manager.Connect(context.Background()); err != nil {
		return nil, err
	}

	globalMu.Lock()
	old := globalManager
	globalManager = manager
	globalMu.Unlock()

	if old != nil {
		_ = old.Disconnect()
	}
	return manager.DB(), nil
}

// GetDB returns the package-level Bun database, or nil before Init.
func GetDB() *bun.DB {
	if m := GetManager(); m != nil {
		return m.DB()
	}
	return nil
}

// GetManager returns the package-level manager, or nil before Init.
func GetManager() Manager {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalManager
}

// Close closes the package-level database connection.
func Close() error {
	globalMu.Lock()
	manager := globalManager
	globalManager = nil
	globalMu.Unlock()

	if manager == nil {
		return nil
	}
	return manager.Disconnect()
}

// GetHealthStatus reports the package-level database health.
func GetHealthStatus(ctx context.Context) *HealthStatus {
	if m := GetManager(); m != nil {
		return m.HealthCheck(ctx)
	}
	return &HealthStatus{LastError: "database not initialized"}
}

// GetStats reports the package-level connection pool statistics.
func GetStats() *DBStats {
	if m := GetManager(); m != nil {
		return m.Stats()
	}
	return &DBStats{}
}

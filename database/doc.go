// Package database provides connection management, configuration loading,
// health checks, query hooks, error classification, and logging built on
// top of Bun.
package database

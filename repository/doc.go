// Package repository provides a generic single-table CRUD repository built
// on Bun: inserts with server-assigned ids and timestamps, filtered reads,
// pagination, counting, snapshot-returning deletes, truncation, transaction
// rebinding, and static schema helpers.
package repository

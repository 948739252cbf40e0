// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store logins, role assignments,
// salaries and the audit log on PostgreSQL or SQLite. Repositories join
// a transaction opened by the Transactor when its context is passed in.
package persistence

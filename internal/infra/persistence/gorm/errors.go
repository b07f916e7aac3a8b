// Package gormpersistence implements the repository interfaces on gorm/MySQL.
package gormpersistence

import "strings"

// isDuplicateEntryError checks common unique-constraint error strings.
// TODO: switch to driver-specific error codes (mysql.MySQLError 1062) once the
// test databases are all on the same driver.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}

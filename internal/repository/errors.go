package repository

import "errors"

// Storage-level sentinel errors. Implementations map driver errors onto these
// so services never inspect gorm or redis errors directly.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry indicates an insert or update violated a unique
	// constraint. The constraint is the source of truth for uniqueness; any
	// earlier existence check is advisory only.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Per-entity aliases, kept so call sites read naturally.
var (
	ErrUserNotFound    = ErrNotFound
	ErrPostNotFound    = ErrNotFound
	ErrCommentNotFound = ErrNotFound
	ErrLikeNotFound    = ErrNotFound
	ErrTokenNotFound   = ErrNotFound
)

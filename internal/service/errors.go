package service

import "errors"

// Business errors the HTTP layer maps to status codes. Anything not in this
// list is treated as an internal error, logged, and hidden from the caller.
var (
	ErrInvalidInput = errors.New("invalid input")

	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidCredentials   = errors.New("contraseña incorrecta")
	ErrUserBanned           = errors.New("usuario baneado")
	ErrForbidden            = errors.New("forbidden")

	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrUserExists    = errors.New("usuario ya existe")
	ErrSubjectExists = errors.New("subject already exists")

	ErrAlreadyLiked = errors.New("already liked")
	ErrNotLiked     = errors.New("not liked")

	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	ErrInternalServer = errors.New("internal server error")
)

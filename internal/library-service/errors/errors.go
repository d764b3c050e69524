package apperrors

import "errors"

var (
	ErrNoResult          = errors.New("query returned no rows")
	ErrStatementNotFound = errors.New("mapped statement not found")
)

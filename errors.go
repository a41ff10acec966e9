package qbank2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource          = errors.New("source content cannot be empty")
	ErrReadSource           = errors.New("failed to read source file")
	ErrAssembleDocument     = errors.New("document assembly failed")
	ErrInvalidTheme         = errors.New("invalid theme")
	ErrInvalidHighlightMode = errors.New("invalid highlight mode")
)

package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrNotImplemented = errors.New("not implemented")
	ErrEditorClosed   = errors.New("editor is not open")
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownView    = errors.New("unknown view")
)

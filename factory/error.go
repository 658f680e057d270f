package factory

import "errors"

var (
	// ErrUnknownKind no computer is built for the key
	ErrUnknownKind = errors.New("unknown computer kind")
)

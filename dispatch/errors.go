package dispatch

import "errors"

var (
	ErrUnknownDispatcher = errors.New("unknown dispatcher")
	ErrClosed            = errors.New("dispatcher closed")
)

package ctxstore

import "errors"

var (
	ErrTimeout   = errors.New("ctxstore: operation timed out waiting for future completion")
	ErrNoFutures = errors.New("ctxstore: WaitAny called with empty futures slice")
)

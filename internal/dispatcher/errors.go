package dispatcher

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown dispatch strategy")
	ErrEmptyResponse   = errors.New("empty model response")
)

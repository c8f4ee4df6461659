package persona

import "errors"

var (
	ErrDuplicateLabel = errors.New("persona: duplicate label")
	ErrInvalidPersona = errors.New("persona: invalid definition")
)

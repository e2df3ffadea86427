package hiringstage

import "errors"

var (
	ErrHiringStageNotFound = errors.New("hiring stage not found")
)

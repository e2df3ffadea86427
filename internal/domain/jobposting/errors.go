package jobposting

import "errors"

var (
	ErrJobPostingNotFound = errors.New("job posting not found")
)

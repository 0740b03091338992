package analysis

import "errors"

// ErrEmptyInput is returned when the job description or resume text is blank.
var ErrEmptyInput = errors.New("job description and resume text are required")

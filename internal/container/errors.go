package container

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNilModel = errors.New("container requires a model implementing Fit and Predict")
	ErrNilSpec  = errors.New("container requires both an X spec and a y spec")
)

// MissingFileError reports a container directory missing one of its four
// expected files. The absent file is named exactly.
type MissingFileError struct {
	Dir  string // Container directory
	File string // Which expected file is absent
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("model directory %s is missing %s", e.Dir, e.File)
}

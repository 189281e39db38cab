package main

import (
	"errors"
	"fmt"
	"os"
)

// Process exit codes. Validation failures get a distinct code so callers
// can tell bad input apart from engine errors.
const (
	ExitSuccess = 0 // Profiles computed (possibly NoData placeholders)
	ExitInvalid = 1 // Input files failed validation
	ExitError   = 2 // Configuration or runtime error
)

// ValidationFailureError indicates that input files were read successfully
// but did not conform to their schema.
type ValidationFailureError struct {
	Message string
}

func (e *ValidationFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var validationErr *ValidationFailureError
		if errors.As(err, &validationErr) {
			os.Exit(ExitInvalid)
		}
		os.Exit(ExitError)
	}
}

package crontab

import (
	"fmt"
	"strings"
)

// NotFoundError means the crontab program isn't installed or isn't on $PATH.
type NotFoundError struct {
	Program   string
	origError error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s must be installed: %v", e.Program, e.origError)
}

func (e *NotFoundError) Unwrap() error {
	return e.origError
}

// ExecutionFailedError means the crontab program ran but didn't succeed,
// typically because it rejected the submitted file. Output holds whatever
// the program wrote to standard error; it's not part of Error() since the
// program's own diagnostics have already been shown to the user.
type ExecutionFailedError struct {
	Program string

	Arguments []string

	// ExitStatus is -1 if the program couldn't be started at all
	ExitStatus int

	Output    string
	origError error
}

func (e *ExecutionFailedError) Error() string {
	command := strings.TrimSpace(e.Program + " " + strings.Join(e.Arguments, " "))

	if e.ExitStatus < 0 {
		return fmt.Sprintf("problem running `%s`: %v", command, e.origError)
	}
	return fmt.Sprintf("`%s` failed with exit status %d", command, e.ExitStatus)
}

func (e *ExecutionFailedError) Unwrap() error {
	return e.origError
}

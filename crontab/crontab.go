// Copyright 2019 Yilmaz Gunalp
//
// This file is part of rusty-cron which makes it simple to manage your crontab.
//
// rusty-cron is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rusty-cron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with rusty-cron.  If not, see <https://www.gnu.org/licenses/>.

package crontab

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// DefaultProgram is the crontab manager looked up on $PATH when nothing else
// is configured.
const DefaultProgram string = "crontab"

// Crontab runs the host's crontab program to read and install the user's
// crontab. The table itself is never parsed.
type Crontab struct {
	program string

	// stderr receives the program's diagnostic output when it fails, so the
	// user sees the reason (for example a syntax error) in their terminal.
	stderr io.Writer
}

// New returns a Crontab that runs program, or DefaultProgram if program is
// empty.
func New(program string) *Crontab {
	return NewWithStderr(program, os.Stderr)
}

// NewWithStderr is like New but relays the program's diagnostics to stderr.
func NewWithStderr(program string, stderr io.Writer) *Crontab {
	if program == "" {
		program = DefaultProgram
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Crontab{program: program, stderr: stderr}
}

// Program returns the name or path of the crontab program.
func (c *Crontab) Program() string {
	return c.program
}

// Get returns the current crontab (the output of `crontab -l`).
// A user with no crontab gets an empty string rather than an error.
func (c *Crontab) Get() (string, error) {
	stdout, stderr, err := c.runCrontab(nil, "-l")

	if isNoCrontabError(stderr, err) {
		return "", nil
	}

	if err != nil {
		if isExecutionFailure(err) {
			io.WriteString(c.stderr, stderr)
		}
		return "", err
	}
	return stdout, nil
}

// Submit installs filename as the user's crontab, replacing it entirely.
// If the crontab program rejects the file its diagnostics are written to the
// terminal as they are produced and the returned error is an
// *ExecutionFailedError.
func (c *Crontab) Submit(filename string) error {
	_, _, err := c.runCrontab(c.stderr, filename)
	return err
}

// isNoCrontabError returns true if and only if the error looks like a failure from `crontab -l`
// of the form "no crontab for foo"
func isNoCrontabError(cronOutput string, err error) bool {
	if err == nil {
		return false
	}

	var executionFailed *ExecutionFailedError
	return errors.As(err, &executionFailed) &&
		executionFailed.ExitStatus > 0 &&
		strings.Contains(cronOutput, "no crontab for")
}

func isExecutionFailure(err error) bool {
	var executionFailed *ExecutionFailedError
	return errors.As(err, &executionFailed)
}

// runCrontab runs the crontab program with arguments. Standard error is
// always captured; if relayStderr is non-nil it's also copied there as the
// program runs.
func (c *Crontab) runCrontab(relayStderr io.Writer, arguments ...string) (
	stdout string, stderr string, err error) {

	log.Printf("Running `%s %s`", c.program, strings.Join(arguments, " "))
	cmd := exec.Command(c.program, arguments...)

	var stdoutBuffer, stderrBuffer bytes.Buffer
	cmd.Stdout = &stdoutBuffer
	if relayStderr != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuffer, relayStderr)
	} else {
		cmd.Stderr = &stderrBuffer
	}

	runErr := cmd.Run()

	stdout = stdoutBuffer.String()
	stderr = stderrBuffer.String()

	if runErr != nil {
		log.Printf("%s failed (output follows) %v\n%s", c.program, runErr, stderr)
		return stdout, stderr, c.classifyError(runErr, stderr, arguments)
	}
	return stdout, stderr, nil
}

func (c *Crontab) classifyError(err error, stderr string, arguments []string) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return &NotFoundError{Program: c.program, origError: err}
	}

	exitStatus := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitStatus = exitErr.ExitCode()
	}

	return &ExecutionFailedError{
		Program:    c.program,
		Arguments:  arguments,
		ExitStatus: exitStatus,
		Output:     stderr,
		origError:  err,
	}
}

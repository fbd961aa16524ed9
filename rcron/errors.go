package rcron

import (
	"errors"
	"strings"

	"github.com/yilmazgunalp/rusty-cron/colour"
	"github.com/yilmazgunalp/rusty-cron/crontab"
)

const (
	exitCodeUnknownCommand exitCode = 1
	exitCodeIO             exitCode = 2
	exitCodeNotFound       exitCode = 3
	exitCodeCrontabFailed  exitCode = 4
	exitCodeConfig         exitCode = 5
)

// IOError means reading the crontab file, or writing the staging file, failed.
type IOError struct {
	Message   string
	origError error
}

func (e *IOError) Error() string {
	return e.Message + ": " + e.origError.Error()
}

func (e *IOError) Unwrap() error {
	return e.origError
}

// UnknownCommandError means the command line didn't match the usage.
type UnknownCommandError struct {
	Arguments []string
	origError error
}

func (e *UnknownCommandError) Error() string {
	return "unrecognised command: rcron " + strings.Join(e.Arguments, " ")
}

func (e *UnknownCommandError) Unwrap() error {
	return e.origError
}

func exitCodeFor(err error) exitCode {
	var (
		ioError        *IOError
		notFound       *crontab.NotFoundError
		crontabFailed  *crontab.ExecutionFailedError
		unknownCommand *UnknownCommandError
	)

	switch {
	case errors.As(err, &unknownCommand):
		return exitCodeUnknownCommand
	case errors.As(err, &ioError):
		return exitCodeIO
	case errors.As(err, &notFound):
		return exitCodeNotFound
	case errors.As(err, &crontabFailed):
		return exitCodeCrontabFailed
	}
	return 1
}

// explain returns lines telling the user what err means for them.
func explain(err error) []string {
	var (
		notFound      *crontab.NotFoundError
		crontabFailed *crontab.ExecutionFailedError
	)

	switch {
	case errors.As(err, &notFound):
		return []string{
			"rcron manages your crontab by running " + colour.Cmd(notFound.Program) + ".",
			"Install it, or set crontab_command in " + Config.GetFilename(),
		}

	case errors.As(err, &crontabFailed):
		return []string{
			crontabFailed.Program + " described the problem above this message.",
			"Your crontab hasn't been changed.",
		}
	}
	return nil
}

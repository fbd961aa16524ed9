// Package colour wraps messages in ANSI escape codes.
package colour

import (
	"strings"
)

const (
	reset  = "\x1b[0m"
	bright = "\x1b[1m"
	dim    = "\x1b[2m"

	fgRed    = "\x1b[31m"
	fgGreen  = "\x1b[32m"
	fgYellow = "\x1b[33m"
	fgBlue   = "\x1b[34m"
)

var allColourCodes = []string{reset, bright, dim, fgRed, fgGreen, fgYellow, fgBlue}

var enabled = true

// SetEnabled turns colour on or off for every message painted afterwards.
// Output that isn't going to a terminal should be left plain.
func SetEnabled(on bool) {
	enabled = on
}

// Success is for messages saying the crontab was changed.
func Success(message string) string {
	return paint(fgGreen, message)
}

// Warning is for things that went wrong after the crontab was changed.
func Warning(message string) string {
	return paint(fgYellow, message)
}

// Error is for failures.
func Error(message string) string {
	return paint(fgRed, message)
}

// ErrorDetail is for the underlying error printed beneath a failure.
func ErrorDetail(message string) string {
	return paint(dim+fgRed, message)
}

// Cmd is for commands the user could type, like `crontab -e`.
func Cmd(message string) string {
	return paint(bright+fgBlue, message)
}

func paint(codes string, message string) string {
	if !enabled {
		return message
	}
	return codes + message + reset
}

// StripAllColourCodes strips all the ANSI colour codes from a string
func StripAllColourCodes(message string) string {
	for _, colourCode := range allColourCodes {
		message = strings.Replace(message, colourCode, "", -1)
	}

	return message
}

// Package out prints messages for the user and sets up the debug log.
package out

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Outputter receives everything printed with Print. It defaults to the
// terminal; tests swap in a *BufferOutputter.
var Outputter OutputterInterface = &TerminalOutputter{}

var logFilename string

func Print(message string) {
	Outputter.Print(message)
}

type OutputterInterface interface {
	Print(message string)
}

type TerminalOutputter struct{}

func (o *TerminalOutputter) Print(message string) {
	fmt.Print(message)
}

// BufferOutputter keeps everything printed so it can be inspected later.
type BufferOutputter struct {
	buffer strings.Builder
}

func (o *BufferOutputter) Print(message string) {
	o.buffer.WriteString(message)
}

func (o *BufferOutputter) String() string {
	return o.buffer.String()
}

// Load sends the standard logger's output to debug.log in rcronDirectory.
func Load(rcronDirectory string) error {
	filename := filepath.Join(rcronDirectory, "debug.log")

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %v", filename, err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	logFilename = filename
	return nil
}

// GetLogFilename returns the file set up by Load, or "" before Load is called.
func GetLogFilename() string {
	return logFilename
}

package staging

import (
	"io"
	"os"
)

type fileFunctionsInterface interface {
	OsOpenFile(string, int, os.FileMode) (io.WriteCloser, error) // like os.OpenFile
	OsRemove(string) error                                       // like os.Remove
}

// fileFunctionsPassthrough simply passes calls through to the real os
// functions
type fileFunctionsPassthrough struct {
}

func (p *fileFunctionsPassthrough) OsOpenFile(
	filename string, flag int, mode os.FileMode) (io.WriteCloser, error) {
	f, err := os.OpenFile(filename, flag, mode)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (p *fileFunctionsPassthrough) OsRemove(filename string) error {
	return os.Remove(filename)
}

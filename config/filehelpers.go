package config

import (
	"io"
	"os"

	"github.com/natefinch/atomic"
)

type fileFunctionsInterface interface {
	OsStat(string) (os.FileInfo, error)      // like os.Stat
	OsOpen(string) (io.ReadCloser, error)    // like os.Open
	AtomicWriteFile(string, io.Reader) error // like atomic.WriteFile
}

type fileFunctionsPassthrough struct {
}

func (p *fileFunctionsPassthrough) OsStat(filename string) (os.FileInfo, error) {
	return os.Stat(filename)
}

func (p *fileFunctionsPassthrough) OsOpen(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (p *fileFunctionsPassthrough) AtomicWriteFile(filename string, r io.Reader) error {
	return atomic.WriteFile(filename, r)
}

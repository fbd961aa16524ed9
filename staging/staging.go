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

// Package staging holds the new crontab in a temporary file while it's
// handed to the crontab program.
package staging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
)

const (
	filenamePrefix = "rcron-"
	filenameSuffix = ".tmp"
)

// File is a staging file. Every call to Create must be paired with a
// (usually deferred) call to Dispose.
type File struct {
	name          string
	handle        io.WriteCloser
	fileFunctions fileFunctionsInterface
}

// Create makes a new, empty staging file in directory. The name is unique per
// call so concurrent invocations never share a staging file. An empty
// directory means os.TempDir().
func Create(directory string) (*File, error) {
	return create(directory, &fileFunctionsPassthrough{})
}

func create(directory string, fileFunctions fileFunctionsInterface) (*File, error) {
	if directory == "" {
		directory = os.TempDir()
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("error generating staging filename: %v", err)
	}

	name := filepath.Join(directory, filenamePrefix+id.String()+filenameSuffix)

	handle, err := fileFunctions.OsOpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("error creating staging file: %v", err)
	}
	log.Printf("created staging file %s", name)

	return &File{name: name, handle: handle, fileFunctions: fileFunctions}, nil
}

// Name returns the full path of the staging file.
func (f *File) Name() string {
	return f.name
}

// Write appends data to the staging file.
func (f *File) Write(data []byte) error {
	if f.handle == nil {
		return fmt.Errorf("error writing to %s: already closed", f.name)
	}
	if _, err := f.handle.Write(data); err != nil {
		return fmt.Errorf("error writing to %s: %v", f.name, err)
	}
	return nil
}

// Close flushes the staging file so another program can read it. Calling it
// more than once is harmless.
func (f *File) Close() error {
	if f.handle == nil {
		return nil
	}
	handle := f.handle
	f.handle = nil

	if err := handle.Close(); err != nil {
		return fmt.Errorf("error closing %s: %v", f.name, err)
	}
	return nil
}

// Dispose closes and removes the staging file. A file that's already gone
// isn't an error, and once the file is removed a failure to close it is
// only logged.
func (f *File) Dispose() error {
	closeErr := f.Close()

	err := f.fileFunctions.OsRemove(f.name)
	switch {
	case err == nil:
		log.Printf("removed staging file %s", f.name)
	case os.IsNotExist(err):
		log.Printf("staging file %s was already gone", f.name)
	default:
		if closeErr != nil {
			log.Print(closeErr)
		}
		return fmt.Errorf("failed to remove %s: %v", f.name, err)
	}

	if closeErr != nil {
		log.Printf("%v (file removed anyway)", closeErr)
	}
	return nil
}

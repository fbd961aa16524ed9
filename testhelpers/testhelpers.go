package testhelpers

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// Maketemp makes a temporary directory which is removed when the test ends.
func Maketemp(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "rcron-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// FakeCrontab behaves like crontab(1) for `-l` and `<file>` but keeps the
// installed table in a file next to itself rather than in the system spool.
type FakeCrontab struct {
	// Program is the path to the executable script
	Program string

	// StoreFilename is where the installed crontab lives. It doesn't exist
	// until something is installed.
	StoreFilename string
}

// MakeFakeCrontab writes a fake crontab program into a new temp directory.
// Like the real thing it refuses files containing a job line with fewer than
// six fields, printing "errors in crontab file, can't install." to stderr.
func MakeFakeCrontab(t *testing.T) FakeCrontab {
	t.Helper()
	dir := Maketemp(t)

	fake := FakeCrontab{
		Program:       filepath.Join(dir, "crontab"),
		StoreFilename: filepath.Join(dir, "installed-crontab"),
	}

	if err := ioutil.WriteFile(fake.Program, []byte(fakeCrontabScript), 0700); err != nil {
		t.Fatalf("failed to write fake crontab: %v", err)
	}
	return fake
}

// Installed returns the currently installed crontab, or "" if there isn't one.
func (f FakeCrontab) Installed(t *testing.T) string {
	t.Helper()
	contents, err := ioutil.ReadFile(f.StoreFilename)
	if os.IsNotExist(err) {
		return ""
	} else if err != nil {
		t.Fatalf("failed to read fake crontab store: %v", err)
	}
	return string(contents)
}

// Install puts contents in place as if `crontab <file>` had succeeded.
func (f FakeCrontab) Install(t *testing.T, contents string) {
	t.Helper()
	if err := ioutil.WriteFile(f.StoreFilename, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write fake crontab store: %v", err)
	}
}

// EntriesIn returns the names of the files in dir.
func EntriesIn(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read directory %s: %v", dir, err)
	}
	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

const fakeCrontabScript = `#!/bin/sh
store="$(dirname "$0")/installed-crontab"

case "$1" in
-l)
	if [ ! -f "$store" ]; then
		echo "no crontab for $(id -un)" >&2
		exit 1
	fi
	cat "$store"
	;;
*)
	if [ ! -r "$1" ]; then
		echo "crontab: $1: No such file or directory" >&2
		exit 1
	fi
	if ! awk '/^[ \t]*#/ || NF == 0 || $1 ~ /^@/ || $1 ~ /=/ { next } NF < 6 { bad = 1 } END { exit bad }' "$1"; then
		echo "\"$1\": bad minute" >&2
		echo "errors in crontab file, can't install." >&2
		exit 1
	fi
	cp "$1" "$store"
	;;
esac
`

package config

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yilmazgunalp/rusty-cron/assert"
	"github.com/yilmazgunalp/rusty-cron/testhelpers"
)

func TestLoad(t *testing.T) {
	t.Run("Load actually works from a real config file", func(t *testing.T) {
		tmpdir := testhelpers.Maketemp(t)
		err := ioutil.WriteFile(filepath.Join(tmpdir, "config.toml"), []byte(exampleTomlDocument), 0600)
		assert.ErrorIsNil(t, err)

		config, err := Load(tmpdir)
		assert.ErrorIsNil(t, err)

		assert.Equal(t, 0, len(config.parsedMetadata.Undecoded()))
		assert.Equal(t, filepath.Join(tmpdir, "config.toml"), config.GetFilename())
		assert.Equal(t, "/usr/local/bin/crontab", config.CrontabCommand())
	})

	t.Run("Load writes out the default file if it's missing", func(t *testing.T) {
		tmpdir := testhelpers.Maketemp(t)

		_, err := Load(tmpdir)
		assert.ErrorIsNil(t, err)

		written, err := ioutil.ReadFile(filepath.Join(tmpdir, "config.toml"))
		assert.ErrorIsNil(t, err)
		assert.Equal(t, defaultConfigFile, string(written))
	})

	t.Run("default config file actually parses", func(t *testing.T) {
		_, err := parse(strings.NewReader(defaultConfigFile))
		assert.ErrorIsNil(t, err)
	})

	t.Run("load successfully if file is present and reads OK", func(t *testing.T) {
		mockFileHelper := mockFileFunctions{
			OsStatReturnError: nil,
			OsOpenReturnError: nil,
			TomlContents:      exampleTomlDocument,
		}
		config, err := load("/tmp/", &mockFileHelper)
		assert.ErrorIsNil(t, err)

		t.Run("Config has filename set correctly", func(t *testing.T) {
			assert.Equal(t, "/tmp/config.toml", config.filename)
		})

		t.Run("default file wasn't written", func(t *testing.T) {
			assert.Equal(t, "", mockFileHelper.AtomicWriteFileGotData)
		})
	})

	t.Run("load writes out default file content if file is missing", func(t *testing.T) {
		mockFileHelper := mockFileFunctions{
			OsStatReturnError:          os.ErrNotExist,
			AtomicWriteFileReturnError: nil,
			OsOpenReturnError:          nil,
			TomlContents:               exampleTomlDocument,
		}
		_, err := load("/tmp/", &mockFileHelper)
		assert.ErrorIsNil(t, err)
		assert.Equal(t, defaultConfigFile, mockFileHelper.AtomicWriteFileGotData)
		assert.Equal(t, "/tmp/config.toml", mockFileHelper.AtomicWriteFileGotFilename)
	})

	t.Run("error if file is missing and couldn't be created due to permission error", func(t *testing.T) {
		mockFileHelper := mockFileFunctions{
			OsStatReturnError:          os.ErrNotExist,
			AtomicWriteFileReturnError: os.ErrPermission,
		}
		_, err := load("/tmp/", &mockFileHelper)
		assert.ErrorIsNotNil(t, err)
		assert.Equal(t, "/tmp/config.toml didn't exist and failed to create it: permission denied", err.Error())
	})

	t.Run("error if file existed but couldn't be read", func(t *testing.T) {
		mockFileHelper := mockFileFunctions{
			OsStatReturnError: nil,              // file exists
			OsOpenReturnError: os.ErrPermission, // file couldn't be read
		}
		_, err := load("/tmp/", &mockFileHelper)
		assert.ErrorIsNotNil(t, err)
		assert.Equal(t, "error reading /tmp/config.toml: permission denied", err.Error())
	})

	t.Run("error if file existed but couldn't parse", func(t *testing.T) {
		mockFileHelper := mockFileFunctions{
			TomlContents: "invalid toml content",
		}
		_, err := load("/tmp/", &mockFileHelper)
		assert.ErrorIsNotNil(t, err)
		if !strings.HasPrefix(err.Error(), "error parsing /tmp/config.toml: error in toml.Decode: ") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("with valid example config.toml", func(t *testing.T) {
		config, err := parse(strings.NewReader(exampleTomlDocument))
		assert.ErrorIsNil(t, err)

		t.Run("crontab_command is read", func(t *testing.T) {
			assert.Equal(t, "/usr/local/bin/crontab", config.CrontabCommand())
		})

		t.Run("staging_directory is read", func(t *testing.T) {
			assert.Equal(t, "/var/tmp", config.StagingDirectory())
		})
	})

	t.Run("return an error if an unrecognised config variable is encountered", func(t *testing.T) {
		_, err := parse(strings.NewReader(`
		crontab_command = "crontab"
		unrecognised_option = false
		`))
		assert.ErrorIsNotNil(t, err)
		assert.Equal(t, "encountered unrecognised config keys: [unrecognised_option]", err.Error())
	})

	t.Run("return an error if staging_directory is relative", func(t *testing.T) {
		_, err := parse(strings.NewReader(`staging_directory = "tmp"`))
		assert.ErrorIsNotNil(t, err)
		assert.Equal(t, "staging_directory must be an absolute path, got 'tmp'", err.Error())
	})
}

func TestCrontabCommand(t *testing.T) {
	var tests = []struct {
		name     string
		toml     string
		expected string
	}{
		{"default when the file is empty", "", "crontab"},
		{"default when set to empty string", `crontab_command = ""`, "crontab"},
		{"uses the configured program", `crontab_command = "/opt/bin/crontab"`, "/opt/bin/crontab"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := parse(strings.NewReader(test.toml))
			assert.ErrorIsNil(t, err)
			assert.Equal(t, test.expected, config.CrontabCommand())
		})
	}
}

func TestStagingDirectory(t *testing.T) {
	t.Run("empty by default", func(t *testing.T) {
		config, err := parse(strings.NewReader(""))
		assert.ErrorIsNil(t, err)
		assert.Equal(t, "", config.StagingDirectory())
	})
}

const exampleTomlDocument = `
crontab_command = "/usr/local/bin/crontab"
staging_directory = "/var/tmp"
`

type mockFileFunctions struct {
	// provides fake versions of os.Stat etc.
	// implements fileFunctionsInterface
	OsStatReturnError          error
	OsOpenReturnError          error
	AtomicWriteFileReturnError error

	TomlContents string

	// AtomicWriteFileGotData stores whatever data was written with AtomicWriteFile()
	AtomicWriteFileGotData     string
	AtomicWriteFileGotFilename string
}

func (m *mockFileFunctions) OsStat(filename string) (os.FileInfo, error) {
	return nil, m.OsStatReturnError
}

func (m *mockFileFunctions) OsOpen(filename string) (io.ReadCloser, error) {
	if m.OsOpenReturnError != nil {
		return nil, m.OsOpenReturnError
	}
	return ioutil.NopCloser(strings.NewReader(m.TomlContents)), nil
}

func (m *mockFileFunctions) AtomicWriteFile(filename string, r io.Reader) error {
	if m.AtomicWriteFileReturnError != nil {
		return m.AtomicWriteFileReturnError
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	m.AtomicWriteFileGotFilename = filename
	m.AtomicWriteFileGotData = string(data)
	return nil
}

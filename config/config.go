package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Filename is the name of the configuration file inside the rcron directory.
const Filename = "config.toml"

// Load reads config.toml from rcronDirectory, writing out the default
// (fully commented) file first if there isn't one.
func Load(rcronDirectory string) (*Config, error) {
	return load(rcronDirectory, &fileFunctionsPassthrough{})
}

func load(rcronDirectory string, helper fileFunctionsInterface) (*Config, error) {
	configFilename := filepath.Join(rcronDirectory, Filename)

	if _, err := helper.OsStat(configFilename); os.IsNotExist(err) {
		// file does not exist, write out default config file
		err = helper.AtomicWriteFile(configFilename, strings.NewReader(defaultConfigFile))

		if err != nil {
			return nil, fmt.Errorf("%s didn't exist and failed to create it: %v", configFilename, err)
		}
	}

	f, err := helper.OsOpen(configFilename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", configFilename, err)
	}
	defer f.Close()

	config, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", configFilename, err)
	}
	config.filename = configFilename
	return config, nil
}

type Config struct {
	parsedConfig   tomlConfig
	parsedMetadata toml.MetaData

	filename string
}

func (c *Config) GetFilename() string {
	return c.filename
}

// CrontabCommand is the program used to read and install crontabs.
func (c *Config) CrontabCommand() string {
	if !c.parsedMetadata.IsDefined("crontab_command") || c.parsedConfig.CrontabCommand == "" {
		return defaultCrontabCommand
	}
	return c.parsedConfig.CrontabCommand
}

// StagingDirectory is where new crontabs are written before being installed.
// An empty string means the system temp directory.
func (c *Config) StagingDirectory() string {
	return c.parsedConfig.StagingDirectory
}

func parse(r io.Reader) (*Config, error) {
	var parsedConfig tomlConfig
	metadata, err := toml.NewDecoder(r).Decode(&parsedConfig)

	if err != nil {
		return nil, fmt.Errorf("error in toml.Decode: %v", err)
	}

	if len(metadata.Undecoded()) > 0 {
		// found config variables that we don't know how to match to
		// the tomlConfig structure
		return nil, fmt.Errorf("encountered unrecognised config keys: %v", metadata.Undecoded())
	}

	if parsedConfig.StagingDirectory != "" && !filepath.IsAbs(parsedConfig.StagingDirectory) {
		return nil, fmt.Errorf("staging_directory must be an absolute path, got '%s'",
			parsedConfig.StagingDirectory)
	}

	config := Config{
		parsedConfig:   parsedConfig,
		parsedMetadata: metadata,
	}
	return &config, nil
}

type tomlConfig struct {
	CrontabCommand   string `toml:"crontab_command"`
	StagingDirectory string `toml:"staging_directory"`
}

const defaultCrontabCommand = "crontab"

const defaultConfigFile string = `# rusty-cron configuration file for 'rcron' command
#
# # crontab_command is the program rcron runs to read ('crontab -l') and
# # install ('crontab <file>') your crontab. Defaults to 'crontab' on $PATH.
# crontab_command = "/usr/bin/crontab"
#
# # staging_directory is where rcron writes the new crontab before handing it
# # to crontab_command. It must be an absolute path. Defaults to the system
# # temp directory.
# staging_directory = "/tmp"
`

package rcron

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/yilmazgunalp/rusty-cron/config"
	"github.com/yilmazgunalp/rusty-cron/out"
	"github.com/yilmazgunalp/rusty-cron/ui"
)

// initialise finds the rcron directory, then sets up the debug log and
// loads the config from it. It returns a non-zero exit code on failure.
func initialise() exitCode {
	var err error
	rcronDirectory, err = getRcronDirectory()
	if err != nil {
		out.Print(ui.FormatFailure("Failed to get rcron directory", nil, err))
		return exitCodeConfig
	}

	if err := out.Load(rcronDirectory); err != nil {
		out.Print(ui.FormatFailure("Failed to open log file", nil, err))
		return exitCodeConfig
	}

	configPointer, err := config.Load(rcronDirectory)
	if err != nil {
		out.Print(ui.FormatFailure("Failed to open config file", nil, err))
		return exitCodeConfig
	}
	Config = *configPointer
	return 0
}

func getRcronDirectory() (string, error) {
	dirFromEnv := os.Getenv("RCRON_DIR")

	if dirFromEnv != "" {
		return dirFromEnv, nil
	}
	return makeRcronHomeDirectory()
}

func makeRcronHomeDirectory() (string, error) {
	homeDirectory, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	rcronDir := filepath.Join(homeDirectory, ".config", "rcron")
	if err = os.MkdirAll(rcronDir, 0700); err != nil {
		return "", err
	}

	return rcronDir, nil
}

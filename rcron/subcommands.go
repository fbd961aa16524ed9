package rcron

import (
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"

	"github.com/yilmazgunalp/rusty-cron/colour"
	"github.com/yilmazgunalp/rusty-cron/out"
	"github.com/yilmazgunalp/rusty-cron/staging"
	"github.com/yilmazgunalp/rusty-cron/ui"
)

type stagingFileInterface interface {
	Name() string
	Write([]byte) error
	Close() error
	Dispose() error
}

var createStagingFile = func(directory string) (stagingFileInterface, error) {
	stagingFile, err := staging.Create(directory)
	if err != nil {
		return nil, err
	}
	return stagingFile, nil
}

// add installs the contents of filename as the crontab, replacing whatever
// was there.
func add(filename string, gateway crontabInterface, stagingDirectory string) error {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return &IOError{Message: "couldn't read crontab file", origError: err}
	}

	if err := install(gateway, stagingDirectory, contents); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("%q has been added to crontab!", filepath.Base(filename)))
	return nil
}

// replace is the same as add.
func replace(filename string, gateway crontabInterface, stagingDirectory string) error {
	return add(filename, gateway, stagingDirectory)
}

// appendJob adds job as a new line at the end of the current crontab.
func appendJob(job string, gateway crontabInterface, stagingDirectory string) error {
	currentCrontab, err := gateway.Get()
	if err != nil {
		return err
	}

	existing, newLine := splitAppend(currentCrontab, job)
	if err := install(gateway, stagingDirectory, []byte(existing), []byte(newLine)); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("%q has been added to crontab!", strings.TrimRight(job, "\n")))
	return nil
}

// list prints the current crontab exactly as `crontab -l` gave it.
func list(gateway crontabInterface) error {
	currentCrontab, err := gateway.Get()
	if err != nil {
		return err
	}
	out.Print(currentCrontab)
	return nil
}

// splitAppend returns the two pieces written to the staging file when
// appending job to currentCrontab. The existing crontab gets a trailing
// newline if it's missing one, and job ends in exactly one newline.
func splitAppend(currentCrontab string, job string) (existing string, newLine string) {
	existing = currentCrontab
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing, strings.TrimRight(job, "\n") + "\n"
}

// install writes chunks to a new staging file, submits it as the crontab and
// removes the staging file again, whatever happened.
func install(gateway crontabInterface, stagingDirectory string, chunks ...[]byte) (err error) {
	stagingFile, err := createStagingFile(stagingDirectory)
	if err != nil {
		return &IOError{Message: "couldn't create staging file", origError: err}
	}
	defer func() {
		disposeStagingFile(stagingFile, err == nil)
	}()

	for _, chunk := range chunks {
		if err := stagingFile.Write(chunk); err != nil {
			return &IOError{Message: "couldn't write staging file", origError: err}
		}
	}
	if err := stagingFile.Close(); err != nil {
		return &IOError{Message: "couldn't write staging file", origError: err}
	}

	return gateway.Submit(stagingFile.Name())
}

// disposeStagingFile removes the staging file. Failing to do so is only a
// warning: the crontab has (or hasn't) been changed regardless.
func disposeStagingFile(stagingFile stagingFileInterface, crontabWasUpdated bool) {
	err := stagingFile.Dispose()
	if err == nil {
		return
	}
	log.Printf("failed to remove staging file %s: %v", stagingFile.Name(), err)

	var extraLines []string
	if crontabWasUpdated {
		extraLines = append(extraLines, "Your crontab was still updated.")
	}
	extraLines = append(extraLines, "To tidy up, remove "+colour.Cmd(stagingFile.Name()))

	out.Print(ui.FormatWarning("Failed to remove staging file", extraLines, err))
}

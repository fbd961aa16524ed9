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

package rcron

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/yilmazgunalp/rusty-cron/colour"
	"github.com/yilmazgunalp/rusty-cron/config"
	"github.com/yilmazgunalp/rusty-cron/crontab"
	"github.com/yilmazgunalp/rusty-cron/out"
	"github.com/yilmazgunalp/rusty-cron/ui"
	"golang.org/x/crypto/ssh/terminal"
)

const Version = "0.2.0"

var (
	rcronDirectory string
	Config         config.Config
)

type exitCode = int

// crontabInterface is the part of *crontab.Crontab the subcommands need.
type crontabInterface interface {
	Get() (string, error)
	Submit(filename string) error
}

// Main is the main entry point to the `rcron` command.
func Main() exitCode {
	colour.SetEnabled(terminal.IsTerminal(int(os.Stdout.Fd())))

	if code := initialise(); code != 0 {
		return code
	}

	log.Print("$ " + strings.Join(os.Args, " "))

	return run(
		os.Args[1:],
		crontab.New(Config.CrontabCommand()),
		Config.StagingDirectory(),
	)
}

func usage() string {
	return fmt.Sprintf(`rusty-cron %s

Configuration file: %s
          Log file: %s

Usage:
	rcron add [--] <file>
	rcron append [--] <job>
	rcron replace [--] <file>
	rcron list
	rcron -h | --help
	rcron --version

Options:
	-h --help     Show this screen
	   --version  Show the version`,
		Version,
		Config.GetFilename(),
		out.GetLogFilename(),
	)
}

func run(argv []string, gateway crontabInterface, stagingDirectory string) exitCode {
	args, err := parseArgs(argv)
	if err != nil {
		printFailed(err.Error())
		return exitCodeFor(err)
	}
	if args == nil {
		// printed --help or --version
		return 0
	}

	var headline string

	switch getSubcommand(args, []string{"add", "append", "replace", "list"}) {
	case "add":
		filename, _ := args.String("<file>")
		headline = fmt.Sprintf("Failed to add %s to crontab", filename)
		err = add(filename, gateway, stagingDirectory)

	case "append":
		job, _ := args.String("<job>")
		headline = "Failed to append job to crontab"
		err = appendJob(job, gateway, stagingDirectory)

	case "replace":
		filename, _ := args.String("<file>")
		headline = fmt.Sprintf("Failed to replace crontab with %s", filename)
		err = replace(filename, gateway, stagingDirectory)

	case "list":
		headline = "Failed to list crontab"
		err = list(gateway)

	default:
		headline = "Unhandled subcommand"
		err = &UnknownCommandError{Arguments: argv}
	}

	if err != nil {
		log.Printf("%s: %v", headline, err)
		out.Print(ui.FormatFailure(headline, explain(err), err))
		return exitCodeFor(err)
	}
	return 0
}

func parseArgs(argv []string) (docopt.Opts, error) {
	// OptionsFirst keeps a job such as "-1 * * * * cmd" from being read
	// as flags.
	parser := &docopt.Parser{
		HelpHandler: func(err error, usage string) {
			out.Print(usage + "\n")
		},
		OptionsFirst: true,
	}

	if argv == nil {
		argv = []string{} // docopt would read os.Args instead
	}

	args, err := parser.ParseArgs(usage(), argv, Version)
	if err != nil {
		return nil, &UnknownCommandError{Arguments: argv, origError: err}
	}
	return args, nil
}

// getSubcommand returns the first of subcommands present in args, or "" if
// none are.
func getSubcommand(args docopt.Opts, subcommands []string) string {
	for _, subcommand := range subcommands {
		if value, err := args.Bool(subcommand); err == nil && value {
			return subcommand
		}
	}
	return ""
}

package rcron

import (
	"github.com/yilmazgunalp/rusty-cron/colour"
	"github.com/yilmazgunalp/rusty-cron/out"
)

func printSuccess(message string) {
	out.Print(" " + colour.Success("▸   "+message) + "\n")
}

func printFailed(message string) {
	out.Print(" " + colour.Error("▸   "+message) + "\n")
}

package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Deal a table and run the dealer screen"`
	Judge   JudgeCmd         `cmd:"" help:"Name the best hand from board and hole cards"`
	Watch   WatchCmd         `cmd:"" help:"Watch a running table as a spectator"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dealerpad"),
		kong.Description("Dealer assistant for chipless pass-and-play hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// setupLogger configures the app logger. The dealer screen owns stdout, so
// logs go to stderr.
func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

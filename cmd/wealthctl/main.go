package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/simaogato/wealthdash/internal/cli"
	"github.com/simaogato/wealthdash/internal/logger"
)

var verbose = flag.Bool("v", false, "log debug output to stderr")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	log := zap.NewNop().Sugar()
	if *verbose {
		log = logger.New("dev")
	}

	ctx := logger.WithContext(context.Background(), log)
	status := commander.Execute(ctx)
	_ = log.Sync()
	os.Exit(int(status))
}

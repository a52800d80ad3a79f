package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-t string   default theme, light or dark (default from Config)
//	-e int      error display duration in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.DefaultTheme, "t", cfg.DefaultTheme, "default theme (light or dark)")
	errorDisplaySeconds := fs.Int("e", int(cfg.ErrorDisplayDuration.Seconds()), "error display duration (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ErrorDisplayDuration = time.Duration(*errorDisplaySeconds) * time.Second
}

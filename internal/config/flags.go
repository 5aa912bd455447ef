package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/birthdaybook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the local database file (default from Config)
//	-s string   secret key for session tokens (default from Config)
//	-t int      session validity in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "f", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key used to sign session tokens")
	sessionValidity := fs.Int("t", int(cfg.SessionValidityDuration.Seconds()), "session validity (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionValidityDuration = time.Duration(*sessionValidity) * time.Second
}

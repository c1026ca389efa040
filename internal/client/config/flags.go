package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags listed in doc.go are considered; os.Args is filtered with
// flagx.FilterArgs so the -c/-config flag and REPL arguments do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-v", "-u", "-p", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "message language")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.UsernamePolicy, "u", cfg.UsernamePolicy, "username policy (strict|permissive)")
	fs.StringVar(&cfg.PasswordStorage, "p", cfg.PasswordStorage, "password storage (bcrypt|sha512crypt|plain)")
	fs.StringVar(&cfg.RememberMeScheme, "r", cfg.RememberMeScheme, "remember-me scheme (sealed|legacy)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

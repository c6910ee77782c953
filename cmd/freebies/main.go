package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/erazemk/freebies/internal/config"
)

const usage = `Usage: freebies [flags] <command> [args]

Commands:
  serve                     run the HTTP API
  seed                      clear the ledger and load the demo data
  summary                   print the ledger contents and relationships
  useradd <name> <role>     create an API user (admin, clerk or viewer)

Flags:
  -d, -db <path>          SQLite database path (default: freebies.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -u, -user <name>        admin username on first run (default: Admin)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit

Every flag can also be set with FREEBIES_DB_PATH, FREEBIES_ADDR,
FREEBIES_ADMIN_USER or FREEBIES_LOG_PATH, or in a .env file.
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("freebies", flag.ContinueOnError)
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "")
	fs.StringVar(&cfg.AdminUser, "user", cfg.AdminUser, "")
	fs.StringVar(&cfg.AdminUser, "u", cfg.AdminUser, "")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "")
	fs.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}

	// INFO/WARN go to stdout, ERROR to stderr, everything to the log file if set.
	closeLog, err := setupLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	ctx := context.Background()
	args := fs.Args()[1:]

	switch fs.Arg(0) {
	case "serve":
		err = cmdServe(cfg)
	case "seed":
		err = cmdSeed(ctx, cfg)
	case "summary":
		err = cmdSummary(ctx, cfg, os.Stdout)
	case "useradd":
		err = cmdUserAdd(ctx, cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if closeLog != nil {
			closeLog()
		}
		os.Exit(1)
	}
}

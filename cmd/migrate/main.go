package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/catalog/backend/internal/infrastructure/logger"
	"github.com/catalog/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// command is one migrate subcommand. Commands with a nil offline func
// need a migrator connected to the configured database.
type command struct {
	usage   string
	help    string
	minArgs int
	offline func(env *env, args []string) error
	online  func(env *env, m *migration.Migrator, args []string) error
}

type env struct {
	path string
	log  *zap.Logger
	out  io.Writer
}

var errUsage = errors.New("usage")

var commands = map[string]command{
	"up": {usage: "up", help: "Apply all pending migrations",
		online: func(_ *env, m *migration.Migrator, _ []string) error { return m.Up() }},
	"down": {usage: "down", help: "Roll back all migrations",
		online: func(_ *env, m *migration.Migrator, _ []string) error { return m.Down() }},
	"step": {usage: "step <n>", help: "Apply n migrations (positive=up, negative=down)", minArgs: 1,
		online: func(_ *env, m *migration.Migrator, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n == 0 {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return m.Steps(n)
		}},
	"goto": {usage: "goto <version>", help: "Migrate to a specific version", minArgs: 1,
		online: func(_ *env, m *migration.Migrator, args []string) error {
			v, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return m.GoTo(uint(v))
		}},
	"force": {usage: "force <version>", help: "Force set the version (repairs a dirty state)", minArgs: 1,
		online: func(_ *env, m *migration.Migrator, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return m.Force(v)
		}},
	"version": {usage: "version", help: "Show the current schema version",
		online: func(e *env, m *migration.Migrator, _ []string) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(e.out, "version=%d dirty=%t\n", v, dirty)
			return err
		}},
	"create": {usage: "create <name> [desc]", help: "Create the next sequential migration pair", minArgs: 1,
		offline: func(e *env, args []string) error {
			dir := e.path
			if dir == "" {
				dir = migration.SourceDir
			}
			desc := strings.Join(args[1:], " ")
			mf, err := migration.CreateMigration(dir, args[0], desc)
			if err != nil {
				return err
			}
			e.log.Info("migration created", zap.String("up", mf.UpPath), zap.String("down", mf.DownPath))
			return nil
		}},
	"list": {usage: "list", help: "List available migrations",
		offline: func(e *env, _ []string) error {
			var names []string
			var err error
			if e.path == "" {
				names, err = migration.EmbeddedMigrations()
			} else {
				names, err = migration.ListMigrations(e.path)
			}
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(e.out, name); err != nil {
					return err
				}
			}
			return nil
		}},
}

// commandOrder fixes the usage listing; map iteration order is random
var commandOrder = []string{"up", "down", "step", "goto", "version", "force", "create", "list"}

func main() {
	path := flag.String("path", "", "Read migrations from this directory instead of the embedded set")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      *level,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	e := &env{path: *path, log: log, out: os.Stdout}
	if err := run(e, flag.Args(), openMigrator); err != nil {
		_ = logger.Sync(log)
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		log.Fatal("migrate failed", zap.Error(err))
	}
	_ = logger.Sync(log)
}

// run resolves and executes one command. open is only called for commands
// that touch the database.
func run(e *env, args []string, open func(*env) (*migration.Migrator, func(), error)) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	rest := args[1:]
	if len(rest) < cmd.minArgs {
		return fmt.Errorf("%w: migrate %s", errUsage, cmd.usage)
	}

	if cmd.offline != nil {
		return cmd.offline(e, rest)
	}

	m, closeFn, err := open(e)
	if err != nil {
		return err
	}
	defer closeFn()
	return cmd.online(e, m, rest)
}

func openMigrator(e *env) (*migration.Migrator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	var m *migration.Migrator
	if e.path == "" {
		m, err = migration.New(db, e.log)
	} else {
		m, err = migration.NewFromPath(db, e.path, e.log)
	}
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return m, func() {
		_ = m.Close()
		_ = db.Close()
	}, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Catalog database migration tool\n\nUsage:\n  migrate [flags] <command> [arguments]\n\nCommands:")
	for _, name := range commandOrder {
		c := commands[name]
		fmt.Fprintf(w, "  %-22s%s\n", c.usage, c.help)
	}
	fmt.Fprintln(w, "\nFlags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w, "\nThe database is configured through CATALOG_DATABASE_* variables or config.toml.")
}

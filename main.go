package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "sqlferry [config.toml]",
	Short:   "cross-dialect SQL schema and row migration tool",
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    runMigration,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to migration TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMigration(cmd *cobra.Command, args []string) error {
	// Resolve config path: positional arg takes precedence over --config flag
	cfgPath := configPath
	if len(args) > 0 {
		cfgPath = args[0]
	}
	if cfgPath == "" {
		return fmt.Errorf("config file required: sqlferry <config.toml> or sqlferry --config <config.toml>")
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.ConsoleVerbosity, cfg.LogFileVerbosity, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	// An interrupt aborts the run in an orderly way: the current row
	// write finishes, everything after it is skipped, and the error
	// surfaces. Nothing already written is rolled back.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	logger.Infof("sqlferry %s: %s -> %s", version, cfg.Source.Dialect, cfg.Target.Dialect)

	source, err := newDialectSupport(cfg.sourceDialect, logger)
	if err != nil {
		return err
	}
	target, err := newDialectSupport(cfg.targetDialect, logger)
	if err != nil {
		return err
	}

	sourceDB, err := openDialectDB(source, cfg.Source.DSN)
	if err != nil {
		return err
	}
	defer sourceDB.Close()
	if err := sourceDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping source: %w", err)
	}

	targetDB, err := openDialectDB(target, cfg.Target.DSN)
	if err != nil {
		return err
	}
	defer targetDB.Close()
	if err := targetDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping target: %w", err)
	}

	orch, err := newOrchestrator(source, target, sourceDB, targetDB, logger, OrchestratorConfig{
		Policy:         cfg.policy,
		Prompt:         terminalPrompt,
		SkipPrefix:     cfg.SkipTablePrefix,
		Progress:       cfg.Progress,
		PlanOnly:       cfg.PlanOnly,
		TargetWorkarea: cfg.Target.Database,
	})
	if err != nil {
		return err
	}

	if err := orch.Run(ctx); err != nil {
		return err
	}

	logger.Infof("finished in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// openDialectDB opens a driver connection with dialect-specific options.
// A single connection is enough: the run is strictly sequential.
func openDialectDB(sup *DialectSupport, dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	switch sup.Dialect {
	case DialectMySQL:
		db, err = openMySQL(dsn)
	default:
		db, err = sql.Open(sup.DriverName, dsn)
		if err != nil {
			err = fmt.Errorf("open %s: %w", sup.Dialect, err)
		}
	}
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// terminalPrompt asks on stdin what to do with an existing target table.
func terminalPrompt(table string) (OverwriteChoice, error) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprintf(os.Stderr, "target table %s exists: [s]kip, [o]verwrite, overwrite [a]ll, a[b]ort? ", table)
		line, err := reader.ReadString('\n')
		if err != nil {
			return ChoiceAbort, fmt.Errorf("read prompt answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "s", "skip":
			return ChoiceSkip, nil
		case "o", "overwrite":
			return ChoiceOverwrite, nil
		case "a", "all":
			return ChoiceOverwriteAll, nil
		case "b", "abort":
			return ChoiceAbort, nil
		}
	}
}

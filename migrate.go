package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gosuri/uiprogress"
)

// OverwritePolicy decides what happens when a target table already exists.
type OverwritePolicy int

const (
	OverwriteNever OverwritePolicy = iota
	OverwriteAsk
	OverwriteSkip
	OverwriteIfEmpty
	Overwrite
	OverwriteAll
)

func parseOverwritePolicy(tag string) (OverwritePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "never":
		return OverwriteNever, nil
	case "ask":
		return OverwriteAsk, nil
	case "skip":
		return OverwriteSkip, nil
	case "if_empty", "overwrite_if_empty":
		return OverwriteIfEmpty, nil
	case "overwrite":
		return Overwrite, nil
	case "overwrite_all", "all":
		return OverwriteAll, nil
	default:
		return 0, fmt.Errorf("unsupported overwrite policy %q (must be never, ask, skip, if_empty, overwrite, or overwrite_all)", tag)
	}
}

// OverwriteChoice is one answer to the interactive overwrite prompt.
type OverwriteChoice int

const (
	ChoiceSkip OverwriteChoice = iota
	ChoiceOverwrite
	ChoiceOverwriteAll
	ChoiceAbort
)

// OverwritePrompt asks the operator what to do with one existing target
// table. Injected so the orchestrator is testable without a terminal.
type OverwritePrompt func(table string) (OverwriteChoice, error)

// planTableName is the persisted audit table recording every column
// transformation decision of a run.
const planTableName = "migration_plan"

// Orchestrator drives the full migration: table enumeration, column
// transformation, DDL, row streaming, and plan logging. Strictly
// sequential; one table finishes before the next starts.
type Orchestrator struct {
	source    *DialectSupport
	target    *DialectSupport
	sourceDB  *sql.DB
	targetDB  *sql.DB
	meta      MetadataSource
	transform *Transformer
	log       *Logger

	policy         OverwritePolicy
	prompt         OverwritePrompt
	skipPrefix     string
	progress       bool
	planOnly       bool
	targetWorkarea string
}

// OrchestratorConfig carries the explicit knobs the orchestrator needs;
// there is no process-wide state.
type OrchestratorConfig struct {
	Policy     OverwritePolicy
	Prompt     OverwritePrompt
	SkipPrefix string
	Progress   bool
	PlanOnly   bool

	// TargetWorkarea, when set, is created on the target before
	// anything else (dialects that support CREATE DATABASE IF NOT
	// EXISTS only; elsewhere the DSN picks the database).
	TargetWorkarea string
}

func newOrchestrator(source, target *DialectSupport, sourceDB, targetDB *sql.DB, log *Logger, cfg OrchestratorConfig) (*Orchestrator, error) {
	tr, err := newTransformer(source, target)
	if err != nil {
		return nil, err
	}
	prompt := cfg.Prompt
	if cfg.Policy == OverwriteAsk && prompt == nil {
		return nil, stepErrf("configure", "overwrite policy 'ask' requires a prompt")
	}
	return &Orchestrator{
		source:         source,
		target:         target,
		sourceDB:       sourceDB,
		targetDB:       targetDB,
		meta:           source.NewSource(sourceDB, "", log),
		transform:      tr,
		log:            log,
		policy:         cfg.Policy,
		prompt:         prompt,
		skipPrefix:     cfg.SkipPrefix,
		progress:       cfg.Progress,
		planOnly:       cfg.PlanOnly,
		targetWorkarea: cfg.TargetWorkarea,
	}, nil
}

// Run executes the whole migration. The first error aborts the run;
// partially created or loaded tables are left as-is.
func (o *Orchestrator) Run(ctx context.Context) error {
	wa, err := o.meta.CurrentWorkarea(ctx)
	if err != nil {
		return stepErr("read workarea", err)
	}
	o.log.Infof("migrating workarea %s: %s -> %s", wa, o.source.Dialect, o.target.Dialect)

	if err := o.ensureTargetWorkarea(ctx); err != nil {
		return err
	}

	if err := o.rebuildPlanLog(ctx); err != nil {
		return err
	}

	tables, err := o.meta.ListTables(ctx)
	if err != nil {
		return stepErr("list tables", err)
	}
	o.log.Infof("found %d tables", len(tables))

	for _, table := range tables {
		if o.skipPrefix != "" && strings.HasPrefix(strings.ToLower(table), strings.ToLower(o.skipPrefix)) {
			o.log.Debugf("skipping system table %s", table)
			continue
		}
		if err := ctx.Err(); err != nil {
			return stepErr("interrupted", err)
		}
		if err := o.migrateTable(ctx, table); err != nil {
			return err
		}
	}

	o.log.Infof("migration complete")
	return nil
}

func (o *Orchestrator) migrateTable(ctx context.Context, table string) error {
	cols, err := o.meta.ListColumns(ctx, table)
	if err != nil {
		return stepErr(fmt.Sprintf("list columns for %s", table), err)
	}
	if len(cols) == 0 {
		return stepErrf("load definitions", "table %s has no columns", table)
	}

	transformed := o.transform.Transform(cols)
	for _, tc := range transformed {
		o.log.Debugf("  %s", tc.describe())
	}

	created, err := o.createTargetTable(ctx, table, transformed)
	if err != nil {
		return err
	}
	if !created {
		o.log.Infof("skipping table %s", table)
		return nil
	}

	if !o.planOnly {
		if err := o.importRows(ctx, table, transformed); err != nil {
			return err
		}
	}

	return o.recordPlan(ctx, table, transformed)
}

// createTargetTable applies the overwrite policy and, unless the table
// is skipped, recreates it from the transformed definitions. Returns
// false when the policy says to leave the existing table alone.
func (o *Orchestrator) createTargetTable(ctx context.Context, table string, cols []TransformedColumnDefinition) (bool, error) {
	exists, count := o.targetTableRowCount(ctx, table)
	if exists {
		proceed, err := o.resolveOverwrite(table, count)
		if err != nil || !proceed {
			return false, err
		}
		if err := o.dropTable(ctx, table); err != nil {
			return false, stepErr(fmt.Sprintf("drop table %s", table), err)
		}
	}

	ddl := compileCreateTable(table, cols, o.target)
	o.log.Infof("creating table %s", table)
	o.log.Debugf("  %s", ddl)
	if _, err := o.targetDB.ExecContext(ctx, ddl); err != nil {
		return false, stepErr(fmt.Sprintf("create table %s", table), fmt.Errorf("%w\nDDL: %s", err, ddl))
	}
	return true, nil
}

// resolveOverwrite evaluates the overwrite policy for one existing
// target table. A ChoiceOverwriteAll answer latches the policy for the
// rest of the run.
func (o *Orchestrator) resolveOverwrite(table string, rowCount int64) (bool, error) {
	switch o.policy {
	case OverwriteNever:
		return false, stepErrf("create table", "target table %s already exists (overwrite policy 'never')", table)
	case OverwriteSkip:
		return false, nil
	case OverwriteIfEmpty:
		if rowCount > 0 {
			o.log.Warnf("target table %s has %d rows, leaving it alone", table, rowCount)
			return false, nil
		}
		return true, nil
	case Overwrite, OverwriteAll:
		return true, nil
	case OverwriteAsk:
		choice, err := o.prompt(table)
		if err != nil {
			return false, stepErr("overwrite prompt", err)
		}
		switch choice {
		case ChoiceSkip:
			return false, nil
		case ChoiceOverwrite:
			return true, nil
		case ChoiceOverwriteAll:
			o.policy = OverwriteAll
			return true, nil
		case ChoiceAbort:
			return false, stepErrf("create table", "aborted at table %s", table)
		default:
			return false, stepErrf("overwrite prompt", "unsupported choice %d", choice)
		}
	default:
		return false, stepErrf("configure", "unsupported overwrite policy %d", o.policy)
	}
}

// targetTableRowCount probes the target table. A failing count is taken
// as "table does not exist"; metadata probing stays within plain SQL so
// every dialect goes through the same path.
func (o *Orchestrator) targetTableRowCount(ctx context.Context, table string) (bool, int64) {
	var count int64
	err := o.targetDB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", o.target.QuoteIdent(table))).Scan(&count)
	if err != nil {
		return false, 0
	}
	return true, count
}

func (o *Orchestrator) dropTable(ctx context.Context, table string) error {
	_, err := o.targetDB.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s", o.target.QuoteIdent(table)))
	return err
}

// importRows streams every source row through the importer: one open
// cursor, one prepared insert, one row at a time.
func (o *Orchestrator) importRows(ctx context.Context, table string, cols []TransformedColumnDefinition) error {
	sel := compileSelect(table, cols, o.source)
	ins, err := compileInsert(table, cols, o.target)
	if err != nil {
		return err
	}

	stmt, err := o.targetDB.PrepareContext(ctx, ins)
	if err != nil {
		return stepErr(fmt.Sprintf("prepare insert for %s", table), err)
	}
	defer stmt.Close()

	var bar *uiprogress.Bar
	var progress *uiprogress.Progress
	if o.progress {
		if total := o.sourceTableRowCount(ctx, table); total > 0 {
			progress = uiprogress.New()
			progress.Start()
			bar = progress.AddBar(int(total)).AppendCompleted()
			bar.PrependFunc(func(*uiprogress.Bar) string { return table })
			defer progress.Stop()
		}
	}

	rows, err := o.sourceDB.QueryContext(ctx, sel.Text)
	if err != nil {
		return stepErr(fmt.Sprintf("select from %s", table), err)
	}
	defer rows.Close()

	imp := newRowImporter(stmt, cols)
	values := make([]any, len(cols))
	scan := make([]any, len(cols))
	for i := range values {
		scan[i] = &values[i]
	}

	var imported int64
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return stepErr("interrupted", err)
		}
		if err := rows.Scan(scan...); err != nil {
			return stepErr(fmt.Sprintf("scan row from %s", table), err)
		}
		if err := imp.BindAndExecute(ctx, values); err != nil {
			return stepErr(fmt.Sprintf("import into %s", table), err)
		}
		imported++
		if bar != nil {
			bar.Incr()
		}
	}
	if err := rows.Err(); err != nil {
		return stepErr(fmt.Sprintf("read rows from %s", table), err)
	}

	o.log.Infof("imported %d rows into %s", imported, table)
	return nil
}

func (o *Orchestrator) sourceTableRowCount(ctx context.Context, table string) int64 {
	var count int64
	if err := o.sourceDB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", o.source.QuoteIdent(table))).Scan(&count); err != nil {
		return 0
	}
	return count
}

// ensureTargetWorkarea creates the configured target database when the
// dialect supports creating one over an existing connection.
func (o *Orchestrator) ensureTargetWorkarea(ctx context.Context) error {
	if o.targetWorkarea == "" || o.target.Dialect != DialectMySQL {
		return nil
	}
	if _, err := o.targetDB.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", o.target.QuoteIdent(o.targetWorkarea))); err != nil {
		return stepErr("create target database", err)
	}
	if _, err := o.targetDB.ExecContext(ctx, fmt.Sprintf("USE %s", o.target.QuoteIdent(o.targetWorkarea))); err != nil {
		return stepErr("select target database", err)
	}
	return nil
}

// rebuildPlanLog drops and recreates the plan table. The plan is an
// audit trail only; the running migration never reads it back.
func (o *Orchestrator) rebuildPlanLog(ctx context.Context) error {
	// Ignore the drop error: the table usually does not exist yet and
	// not every dialect supports DROP TABLE IF EXISTS.
	_, _ = o.targetDB.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s", o.target.QuoteIdent(planTableName)))

	m := o.target.Mapper
	str := func(n int) string {
		return fmt.Sprintf("%s(%d)", m.CanonicalToNative(TypeString), n)
	}
	intType := m.CanonicalToNative(TypeInt)
	boolType := m.CanonicalToNative(TypeBool)

	ddl := fmt.Sprintf(
		`CREATE TABLE %s (table_name %s, column_name %s, data_type %s, `+
			`character_maximum_length %s, numeric_precision %s, numeric_scale %s, `+
			`is_nullable %s, original_type %s, to_utc_query %s, `+
			`PRIMARY KEY (table_name, column_name))`,
		o.target.QuoteIdent(planTableName),
		str(128), str(128), str(128),
		intType, intType, intType,
		boolType, str(128), str(512),
	)
	if _, err := o.targetDB.ExecContext(ctx, ddl); err != nil {
		return stepErr("create plan log", fmt.Errorf("%w\nDDL: %s", err, ddl))
	}
	return nil
}

// recordPlan persists one plan row per transformed column.
func (o *Orchestrator) recordPlan(ctx context.Context, table string, cols []TransformedColumnDefinition) error {
	ph := make([]string, 9)
	for i := range ph {
		ph[i] = o.target.Placeholder(i)
	}
	ins := fmt.Sprintf(
		`INSERT INTO %s (table_name, column_name, data_type, character_maximum_length, `+
			`numeric_precision, numeric_scale, is_nullable, original_type, to_utc_query) `+
			`VALUES (%s)`,
		o.target.QuoteIdent(planTableName), strings.Join(ph, ", "),
	)
	stmt, err := o.targetDB.PrepareContext(ctx, ins)
	if err != nil {
		return stepErr("prepare plan log insert", err)
	}
	defer stmt.Close()

	for _, tc := range cols {
		if _, err := stmt.ExecContext(ctx, planRow(table, tc)...); err != nil {
			return stepErr(fmt.Sprintf("record plan for %s.%s", table, tc.Name), err)
		}
	}
	return nil
}

// planRow flattens one transformed column into plan-log bind values.
// Nullability binds as a bool; every driver encodes that against the
// boolean-family column type the plan DDL declares.
func planRow(table string, tc TransformedColumnDefinition) []any {
	return []any{
		table, tc.Name, tc.TargetNativeType, tc.CharMaxLen,
		tc.NumericPrecision, tc.NumericScale, tc.Nullable,
		tc.OriginalNativeType, tc.ToUTCExpression,
	}
}

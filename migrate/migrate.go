package migrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/batteries/database"
	"github.com/forgo/batteries/schema"
)

// DDL generates the SurrealDB statements defining a model's table and
// fields. Primary-key columns produce no field definition: SurrealDB
// record ids are intrinsic to the table.
func DDL(m schema.Model) []string {
	table := m.TableName()
	stmts := []string{fmt.Sprintf("DEFINE TABLE %s SCHEMAFULL", table)}

	for _, col := range m.SchemaColumns() {
		if col.PrimaryKey {
			continue
		}
		stmts = append(stmts, fieldDDL(table, col))
	}
	return stmts
}

func fieldDDL(table string, col schema.Column) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DEFINE FIELD %s ON TABLE %s TYPE ", col.Name, table)

	if col.Nullable {
		fmt.Fprintf(&b, "option<%s>", col.Type)
	} else {
		b.WriteString(string(col.Type))
	}

	if col.Default != "" {
		fmt.Fprintf(&b, " DEFAULT %s", col.Default)
	}
	if col.OnUpdate != "" {
		// VALUE re-evaluates on every write, refreshing the column.
		fmt.Fprintf(&b, " VALUE %s", col.OnUpdate)
	}
	return b.String()
}

// Plan generates the DDL for every model in the registry, in table
// name order.
func (r *Registry) Plan() []string {
	var stmts []string
	for _, m := range r.Models() {
		stmts = append(stmts, DDL(m)...)
	}
	return stmts
}

// Apply executes the registry's DDL plan statement by statement, so a
// failure reports the exact statement that was rejected.
func (r *Registry) Apply(ctx context.Context, db database.Database) error {
	for _, stmt := range r.Plan() {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("applying %q: %w", stmt, err)
		}
	}
	return nil
}

// Plan generates the DDL for the default registry.
func Plan() []string {
	return defaultRegistry.Plan()
}

// Apply executes the default registry's DDL plan.
func Apply(ctx context.Context, db database.Database) error {
	return defaultRegistry.Apply(ctx, db)
}

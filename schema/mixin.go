package schema

import (
	"fmt"
	"regexp"
	"time"
)

// ID adds an integer primary-key column named "id".
type ID struct {
	ID int64 `json:"id"`
}

func (ID) SchemaColumns() []Column {
	return []Column{{Name: "id", Type: TypeInt, PrimaryKey: true}}
}

// CreatedAt adds a "created_at" timestamp defaulting to the time of
// insertion.
type CreatedAt struct {
	CreatedAt time.Time `json:"created_at"`
}

func (CreatedAt) SchemaColumns() []Column {
	return []Column{{Name: "created_at", Type: TypeDatetime, Default: "time::now()"}}
}

// UpdatedAt adds an "updated_at" timestamp defaulting to the time of
// insertion and refreshed on every update.
type UpdatedAt struct {
	UpdatedAt time.Time `json:"updated_at"`
}

func (UpdatedAt) SchemaColumns() []Column {
	return []Column{{
		Name:     "updated_at",
		Type:     TypeDatetime,
		Default:  "time::now()",
		OnUpdate: "time::now()",
	}}
}

// SoftDelete adds an "is_deleted" flag defaulting to false. Rows are
// flagged rather than removed.
type SoftDelete struct {
	IsDeleted bool `json:"is_deleted"`
}

func (SoftDelete) SchemaColumns() []Column {
	return []Column{{Name: "is_deleted", Type: TypeBool, Default: "false"}}
}

var validColumnName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Renamed returns the source mixin's column under a new name with type
// and semantics unchanged, e.g. a "started_at" variant of CreatedAt:
//
//	startedAt, err := schema.Renamed(schema.CreatedAt{}, "started_at")
//
// The source must expose exactly one column.
func Renamed(source ColumnProvider, name string) (Column, error) {
	if !validColumnName.MatchString(name) {
		return Column{}, fmt.Errorf("invalid column name %q", name)
	}

	cols := source.SchemaColumns()
	if len(cols) != 1 {
		return Column{}, fmt.Errorf("source mixin must expose exactly one column, has %d", len(cols))
	}

	col := cols[0]
	col.Name = name
	return col, nil
}

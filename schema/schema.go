package schema

// Type is a portable column type name.
type Type string

const (
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeString   Type = "string"
	TypeBool     Type = "bool"
	TypeDatetime Type = "datetime"
)

// Column describes one table column.
type Column struct {
	Name       string
	Type       Type
	PrimaryKey bool
	Nullable   bool

	// Default is a database-side default expression applied on insert.
	Default string

	// OnUpdate is a database-side expression re-evaluated on every
	// write, refreshing the column's value.
	OnUpdate string
}

// Model is implemented by table models that expose their schema for
// migration autogeneration.
type Model interface {
	TableName() string
	SchemaColumns() []Column
}

// ColumnProvider is implemented by mixins and models exposing column
// fragments.
type ColumnProvider interface {
	SchemaColumns() []Column
}

// Merge flattens column providers and literal columns, in order, into
// one column list. Accepts ColumnProvider, Column, and []Column.
func Merge(parts ...any) []Column {
	var out []Column
	for _, part := range parts {
		switch p := part.(type) {
		case ColumnProvider:
			out = append(out, p.SchemaColumns()...)
		case Column:
			out = append(out, p)
		case []Column:
			out = append(out, p...)
		default:
			panic("schema: Merge accepts ColumnProvider, Column, or []Column")
		}
	}
	return out
}

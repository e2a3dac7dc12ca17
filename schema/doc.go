// Package schema provides declarative column mixins for table models.
//
// A mixin pairs embeddable Go struct fields with the column fragments
// they map to, so common columns are declared once and merged into any
// model by embedding:
//
//	type Widget struct {
//	    schema.ID
//	    schema.CreatedAt
//	    schema.UpdatedAt
//	    schema.SoftDelete
//
//	    Name string `json:"name"`
//	}
//
//	func (Widget) TableName() string { return "widget" }
//
//	func (w Widget) SchemaColumns() []schema.Column {
//	    return schema.Merge(w.ID, w.CreatedAt, w.UpdatedAt, w.SoftDelete,
//	        schema.Column{Name: "name", Type: schema.TypeString})
//	}
//
// Column fragments exist only at model-definition time; they are never
// mutated afterwards and live as long as the owning model type.
//
// Renamed produces a mixin's column under a different name with its
// type and semantics unchanged, for reuse such as a "started_at"
// variant of CreatedAt.
package schema

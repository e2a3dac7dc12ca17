package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixins_ColumnNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mixin ColumnProvider
		name  string
	}{
		{ID{}, "id"},
		{CreatedAt{}, "created_at"},
		{UpdatedAt{}, "updated_at"},
		{SoftDelete{}, "is_deleted"},
	}

	for _, tc := range cases {
		cols := tc.mixin.SchemaColumns()
		require.Len(t, cols, 1)
		assert.Equal(t, tc.name, cols[0].Name)
	}
}

func TestID_IsPrimaryKey(t *testing.T) {
	t.Parallel()

	col := ID{}.SchemaColumns()[0]
	assert.True(t, col.PrimaryKey)
	assert.Equal(t, TypeInt, col.Type)
}

func TestUpdatedAt_RefreshesOnUpdate(t *testing.T) {
	t.Parallel()

	col := UpdatedAt{}.SchemaColumns()[0]
	assert.Equal(t, TypeDatetime, col.Type)
	assert.NotEmpty(t, col.Default)
	assert.NotEmpty(t, col.OnUpdate)
}

func TestCreatedAt_NoOnUpdate(t *testing.T) {
	t.Parallel()

	col := CreatedAt{}.SchemaColumns()[0]
	assert.NotEmpty(t, col.Default)
	assert.Empty(t, col.OnUpdate, "created_at must never refresh on update")
}

func TestSoftDelete_DefaultsFalse(t *testing.T) {
	t.Parallel()

	col := SoftDelete{}.SchemaColumns()[0]
	assert.Equal(t, TypeBool, col.Type)
	assert.Equal(t, "false", col.Default)
}

func TestRenamed_KeepsTypeAndSemantics(t *testing.T) {
	t.Parallel()

	original := UpdatedAt{}.SchemaColumns()[0]

	renamed, err := Renamed(UpdatedAt{}, "modified_at")
	require.NoError(t, err)

	assert.Equal(t, "modified_at", renamed.Name)
	assert.Equal(t, original.Type, renamed.Type)
	assert.Equal(t, original.Default, renamed.Default)
	assert.Equal(t, original.OnUpdate, renamed.OnUpdate)
	assert.Equal(t, original.PrimaryKey, renamed.PrimaryKey)
	assert.Equal(t, original.Nullable, renamed.Nullable)
}

func TestRenamed_DoesNotMutateSource(t *testing.T) {
	t.Parallel()

	_, err := Renamed(CreatedAt{}, "started_at")
	require.NoError(t, err)

	assert.Equal(t, "created_at", CreatedAt{}.SchemaColumns()[0].Name)
}

func TestRenamed_RejectsInvalidNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "1col", "has space", "semi;colon"} {
		_, err := Renamed(CreatedAt{}, name)
		assert.Error(t, err, "name %q", name)
	}
}

type twoColumnMixin struct{}

func (twoColumnMixin) SchemaColumns() []Column {
	return []Column{{Name: "a"}, {Name: "b"}}
}

func TestRenamed_RejectsMultiColumnSource(t *testing.T) {
	t.Parallel()

	_, err := Renamed(twoColumnMixin{}, "c")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	cols := Merge(ID{}, CreatedAt{},
		Column{Name: "name", Type: TypeString},
		[]Column{{Name: "score", Type: TypeFloat}},
	)

	require.Len(t, cols, 4)
	assert.Equal(t, []string{"id", "created_at", "name", "score"},
		[]string{cols[0].Name, cols[1].Name, cols[2].Name, cols[3].Name})
}

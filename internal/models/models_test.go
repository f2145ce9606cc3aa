package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryField(t *testing.T) {
	repo := Repository{
		Name:       "one",
		Branches:   Text("two"),
		PRs:        nil,
		Workspaces: "four",
		LastCommit: "five",
	}

	tests := []struct {
		field string
		want  string
		ok    bool
	}{
		{FieldName, "one", true},
		{FieldBranches, "two", true},
		{FieldPRs, "", true},
		{FieldWorkspaces, "four", true},
		{FieldLastCommit, "five", true},
		{"owner", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := repo.Field(tt.field)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRepositoryFieldZeroValue(t *testing.T) {
	var repo Repository
	for _, col := range Columns() {
		got, ok := repo.Field(col.Field)
		assert.True(t, ok, col.Field)
		assert.Empty(t, got, col.Field)
	}
}

func TestColumns(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 5)

	var labels []string
	for _, c := range cols {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"Repositories", "Branches", "Pull requests", "Workspaces", "Last commit"}, labels)
	assert.Equal(t, FieldName, cols[0].Field)
	assert.Equal(t, FieldLastCommit, cols[4].Field)
}

func TestParseDisplayMode(t *testing.T) {
	m, err := ParseDisplayMode("compactBorderless")
	require.NoError(t, err)
	assert.Equal(t, DisplayModeCompactBorderless, m)

	m, err = ParseDisplayMode("DEFAULT")
	require.NoError(t, err)
	assert.Equal(t, DisplayModeDefault, m)

	_, err = ParseDisplayMode("dense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compactBorderless")
}

func TestDisplayModeVariants(t *testing.T) {
	tests := []struct {
		mode    DisplayMode
		compact bool
		borders bool
		label   string
	}{
		{DisplayModeDefault, false, true, "Default"},
		{DisplayModeCompact, true, true, "Compact"},
		{DisplayModeCompactBorderless, true, false, "Compact borderless"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.compact, tt.mode.Compact())
			assert.Equal(t, tt.borders, tt.mode.Borders())
			assert.Equal(t, tt.label, tt.mode.Label())
			assert.True(t, tt.mode.Valid())
		})
	}
}

func TestDisplayModeCycle(t *testing.T) {
	assert.Equal(t, DisplayModeCompact, DisplayModeDefault.Next())
	assert.Equal(t, DisplayModeCompactBorderless, DisplayModeCompact.Next())
	assert.Equal(t, DisplayModeDefault, DisplayModeCompactBorderless.Next())

	assert.Equal(t, DisplayModeCompactBorderless, DisplayModeDefault.Prev())
	assert.Equal(t, DisplayModeDefault, DisplayModeCompact.Prev())

	assert.False(t, DisplayMode("wide").Valid())
	assert.Equal(t, DefaultDisplayMode, DisplayModeCompact)
}

package models

// Field names of the repository column schema
const (
	FieldName       = "name"
	FieldBranches   = "branches"
	FieldPRs        = "prs"
	FieldWorkspaces = "workspaces"
	FieldLastCommit = "lastCommit"
)

type Repository struct {
	Name       string  `yaml:"name"`
	Branches   *string `yaml:"branches"` // nil when the repository has no branch summary
	PRs        *string `yaml:"prs"`      // nil when the repository has no pull requests
	Workspaces string  `yaml:"workspaces"`
	LastCommit string  `yaml:"lastCommit"`
}

// Field returns the cell text for a schema field. Nil optional fields and
// missing values come back as "", so a sparse record still renders.
// The bool is false for field names outside the schema.
func (r Repository) Field(name string) (string, bool) {
	switch name {
	case FieldName:
		return r.Name, true
	case FieldBranches:
		return deref(r.Branches), true
	case FieldPRs:
		return deref(r.PRs), true
	case FieldWorkspaces:
		return r.Workspaces, true
	case FieldLastCommit:
		return r.LastCommit, true
	}
	return "", false
}

type Column struct {
	Field string
	Label string
}

// Columns returns the fixed, ordered column schema of the repositories table.
func Columns() []Column {
	return []Column{
		{Field: FieldName, Label: "Repositories"},
		{Field: FieldBranches, Label: "Branches"},
		{Field: FieldPRs, Label: "Pull requests"},
		{Field: FieldWorkspaces, Label: "Workspaces"},
		{Field: FieldLastCommit, Label: "Last commit"},
	}
}

// Text returns a pointer to s, for filling optional fields.
func Text(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package crud

import (
	"fmt"
	"strings"

	"github.com/yinyiqing/hotel-backoffice/pkg/format"
)

// Cell is one rendered table cell. Badge carries a status class when the
// cell renders as a badge; Strong marks emphasized cells.
type Cell struct {
	Text   string
	Badge  string
	Strong bool
}

// Column maps a record field to a rendered cell. Format must be a pure
// function of the record; when nil the field renders as plain text with the
// "-" fallback for absent values.
type Column struct {
	Key    string
	Title  string
	Format func(Record) Cell
}

// Row is one rendered table row keyed by the record's identity field.
type Row struct {
	ID    string
	Cells []Cell
}

// Table is the deterministic rendering of a record list.
type Table struct {
	Columns []string
	Rows    []Row
}

// Config parameterizes the generic list view for one entity kind: endpoint
// templates, identity field, column mapping and the failure messages that
// actually mean "no records".
type Config struct {
	// Kind names the entity family ("employee", "department", ...).
	Kind string
	// Title is the user-facing label used in generic notifications.
	Title string
	// IDField is the record field holding the identity value
	// (employee_id, department_id, room_number, id).
	IDField string

	ListPath   string
	GetPath    string // expects one %s for the id
	CreatePath string
	UpdatePath string // expects one %s for the id
	DeletePath string // expects one %s for the id

	Columns []Column

	// EmptyMessages lists substrings of application-failure messages that
	// must be treated as a successful empty result rather than an error
	// (e.g. "0名员工", "未找到").
	EmptyMessages []string
}

func (c Config) getPath(id string) string    { return fmt.Sprintf(c.GetPath, id) }
func (c Config) updatePath(id string) string { return fmt.Sprintf(c.UpdatePath, id) }
func (c Config) deletePath(id string) string { return fmt.Sprintf(c.DeletePath, id) }

func (c Config) IsEmptyMessage(msg string) bool {
	for _, probe := range c.EmptyMessages {
		if probe != "" && strings.Contains(msg, probe) {
			return true
		}
	}
	return false
}

func (c Config) cell(col Column, rec Record) Cell {
	if col.Format != nil {
		return col.Format(rec)
	}
	return Cell{Text: format.Dash(rec.Str(col.Key))}
}

// Package htmlui renders the server-side pages of the back office. Modules
// build the view models; this package owns the markup.
package htmlui

import (
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/notify"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Label  string
	URL    string
	Active bool
}

// Base carries what every page needs: titles, navigation and the drained
// notification queue.
type Base struct {
	AppTitle string
	Title    string
	Nav      []NavItem
	Notices  []notify.Notice
}

// StatCard is one summary figure, optionally with a proportional bar.
type StatCard struct {
	Label string
	Value string
	// Bar is a width percentage in [0, 100]; zero hides the bar.
	Bar float64
}

// ActionVM is a row- or page-level action. Method GET renders a link,
// anything else renders a one-button form.
type ActionVM struct {
	Label  string
	URL    string
	Method string
	Class  string
}

type RowVM struct {
	ID      string
	Cells   []crud.Cell
	Actions []ActionVM
}

// TableVM is a fully rendered table. Empty is shown when there are no rows.
type TableVM struct {
	Columns []string
	Rows    []RowVM
	Empty   string
}

type Tab struct {
	Label  string
	URL    string
	Active bool
}

type SearchVM struct {
	Action      string
	Name        string
	Keyword     string
	Placeholder string
}

// Option is one select choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one input of the record modal.
type Field struct {
	Name        string
	Label       string
	Type        string // text, number, date, select, textarea, password
	Value       string
	Options     []Option
	Required    bool
	Readonly    bool
	Placeholder string
	Min         string
	Step        string
}

// FormVM is the open create/edit modal.
type FormVM struct {
	Title    string
	Action   string
	Mode     string
	Fields   []Field
	Errors   map[string]string
	CloseURL string
}

// ConfirmVM is the open delete confirmation modal.
type ConfirmVM struct {
	Message   string
	Action    string
	CancelURL string
}

// ListPage is the standard entity list view.
type ListPage struct {
	Base
	Tabs        []Tab
	Search      *SearchVM
	Cards       []StatCard
	CreateURL   string
	CreateLabel string
	Table       TableVM
	Actions     []ActionVM
	Form        *FormVM
	Confirm     *ConfirmVM
}

// ReportSection groups cards and an optional table under a heading.
type ReportSection struct {
	Title string
	Cards []StatCard
	Table *TableVM
}

// RangeVM is the start/end date filter of the revenue report.
type RangeVM struct {
	Action string
	Start  string
	End    string
}

// ReportPage renders the analytics pages.
type ReportPage struct {
	Base
	Tabs     []Tab
	Range    *RangeVM
	Sections []ReportSection
	Exports  []ActionVM
}

// DashboardPage is the landing page after login.
type DashboardPage struct {
	Base
	Cards []StatCard
	Links []ActionVM
}

// LoginPage renders the sign-in form.
type LoginPage struct {
	Base
	Username string
}

// PasswordPage renders the change-password form with per-field errors.
type PasswordPage struct {
	Base
	Errors map[string]string
}

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("htmlui").Parse(pageTemplates)),
	}
}

// Render writes the named page. Known names: list, report, dashboard,
// login, password.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	if r.tmpl.Lookup(page) == nil {
		return errors.Errorf("htmlui: unknown page %q", page)
	}
	return errors.Wrapf(r.tmpl.ExecuteTemplate(w, page, data), "htmlui: render %s", page)
}

// Package review implements the read-only table over submitted records:
// client-side substring filtering plus sortable columns.
package review

import (
	"context"
	"sort"
	"strings"

	"onboard/internal/logging"
	"onboard/internal/user"
)

// Lister supplies the full record set, server order.
type Lister interface {
	ListUsers(ctx context.Context) ([]user.Record, error)
}

// Field names a sortable column.
type Field string

const (
	FieldEmail     Field = "email"
	FieldAboutMe   Field = "aboutMe"
	FieldAddress   Field = "address"
	FieldBirthdate Field = "birthdate"
	FieldCreatedAt Field = "createdAt"
)

// Direction is the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Table holds the loaded records and the view state. The derived view is
// recomputed on demand; the loaded set itself is never mutated.
type Table struct {
	lister  Lister
	logger  logging.Logger
	records []user.Record

	searchTerm string
	sortField  Field
	sortDir    Direction
}

// NewTable creates a table with the default view: sorted by birthdate
// ascending, no filter.
func NewTable(lister Lister) *Table {
	return &Table{
		lister:    lister,
		logger:    logging.NewComponentLogger("ReviewTable"),
		sortField: FieldBirthdate,
		sortDir:   Ascending,
	}
}

// Load fetches all records once. On failure the table treats the result as
// empty rather than surfacing a blocking error.
func (t *Table) Load(ctx context.Context) {
	records, err := t.lister.ListUsers(ctx)
	if err != nil {
		t.logger.Warn("Failed to load records, showing empty table: %v", err)
		t.records = nil
		return
	}
	t.records = records
}

// Total returns the number of loaded records before filtering.
func (t *Table) Total() int {
	return len(t.records)
}

// SetSearch sets the filter term. An empty term matches everything.
func (t *Table) SetSearch(term string) {
	t.searchTerm = term
}

// Sort returns the current sort field and direction.
func (t *Table) Sort() (Field, Direction) {
	return t.sortField, t.sortDir
}

// ToggleSort flips direction when the field is already the sort key,
// otherwise switches to the field ascending.
func (t *Table) ToggleSort(field Field) {
	if t.sortField == field {
		if t.sortDir == Ascending {
			t.sortDir = Descending
		} else {
			t.sortDir = Ascending
		}
		return
	}
	t.sortField = field
	t.sortDir = Ascending
}

// Rows computes the derived view: case-insensitive substring filter over
// email, aboutMe and address, then a lexicographic sort on the chosen
// field's string form with absent values as the empty string.
func (t *Table) Rows() []user.Record {
	term := strings.ToLower(t.searchTerm)

	out := make([]user.Record, 0, len(t.records))
	for _, rec := range t.records {
		if term == "" || matches(rec, term) {
			out = append(out, rec)
		}
	}

	field, dir := t.sortField, t.sortDir
	sort.SliceStable(out, func(i, j int) bool {
		a, b := fieldValue(out[i], field), fieldValue(out[j], field)
		if dir == Ascending {
			return a < b
		}
		return a > b
	})
	return out
}

func matches(rec user.Record, term string) bool {
	return strings.Contains(strings.ToLower(rec.Email), term) ||
		strings.Contains(strings.ToLower(rec.AboutMe), term) ||
		strings.Contains(strings.ToLower(rec.Address), term)
}

func fieldValue(rec user.Record, field Field) string {
	switch field {
	case FieldEmail:
		return rec.Email
	case FieldAboutMe:
		return rec.AboutMe
	case FieldAddress:
		return rec.Address
	case FieldBirthdate:
		return rec.Birthdate
	case FieldCreatedAt:
		if rec.CreatedAt.IsZero() {
			return ""
		}
		return rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	default:
		return ""
	}
}

// ParseField resolves a column name, defaulting to birthdate for anything
// unrecognized.
func ParseField(name string) Field {
	switch Field(name) {
	case FieldEmail, FieldAboutMe, FieldAddress, FieldBirthdate, FieldCreatedAt:
		return Field(name)
	default:
		return FieldBirthdate
	}
}

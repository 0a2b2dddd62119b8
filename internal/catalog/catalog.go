// Package catalog defines the fixed set of optional profile field groups an
// admin can place on onboarding steps, and the pure membership rules that
// turn a configured id set into renderable groups.
package catalog

// Group identifies one toggleable field group. The address group expands to
// four inputs but is toggled as a unit.
type Group int

const (
	AboutMe Group = iota
	Address
	Birthdate
)

func (g Group) String() string {
	switch g {
	case AboutMe:
		return "aboutMe"
	case Address:
		return "address"
	case Birthdate:
		return "birthdate"
	default:
		return "unknown"
	}
}

// Entry is one catalog row: the wire id plus the label shown to admins.
type Entry struct {
	ID    string
	Label string
}

// InputKind distinguishes how a client should collect a value.
type InputKind int

const (
	KindText InputKind = iota
	KindTextarea
	KindDate
)

// Input is one concrete form input belonging to a group.
type Input struct {
	Name  string
	Label string
	Kind  InputKind
}

// entries is the catalog in declaration order; render order follows it.
var entries = []Entry{
	{ID: "aboutMe", Label: "About Me (Textarea)"},
	{ID: "address", Label: "Address"},
	{ID: "birthdate", Label: "Birthdate"},
}

var groupsByID = map[string]Group{
	"aboutMe":   AboutMe,
	"address":   Address,
	"birthdate": Birthdate,
}

// Entries returns the full catalog in declaration order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup resolves a wire id to its group. Unknown ids report ok=false and
// are ignored by callers rather than rejected.
func Lookup(id string) (Group, bool) {
	g, ok := groupsByID[id]
	return g, ok
}

// Entry returns the catalog entry for a group.
func (g Group) Entry() Entry {
	return entries[int(g)]
}

// Label returns the admin-facing label for a group.
func (g Group) Label() string {
	return g.Entry().Label
}

// Visible maps a configured id set to the groups to render, in catalog
// declaration order. Duplicates collapse and unknown ids drop out, so the
// result is always a subset of the catalog.
func Visible(ids []string) []Group {
	present := make(map[Group]bool, len(ids))
	for _, id := range ids {
		if g, ok := Lookup(id); ok {
			present[g] = true
		}
	}
	out := make([]Group, 0, len(present))
	for _, e := range entries {
		g := groupsByID[e.ID]
		if present[g] {
			out = append(out, g)
		}
	}
	return out
}

// Inputs expands a group into its concrete form inputs. Address is a fixed
// four-part group; its sub-fields are not independently toggleable.
func Inputs(g Group) []Input {
	switch g {
	case AboutMe:
		return []Input{{Name: "aboutMe", Label: "Tell us about yourself", Kind: KindTextarea}}
	case Address:
		return []Input{
			{Name: "street", Label: "Street", Kind: KindText},
			{Name: "city", Label: "City", Kind: KindText},
			{Name: "state", Label: "State", Kind: KindText},
			{Name: "zip", Label: "Zip", Kind: KindText},
		}
	case Birthdate:
		return []Input{{Name: "birthdate", Label: "Birthdate", Kind: KindDate}}
	default:
		return nil
	}
}

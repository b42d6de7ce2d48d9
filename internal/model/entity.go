package model

// EntityKind is the type of reference an entity points at.
type EntityKind string

const (
	EntityPersonnel EntityKind = "personnel"
	EntityWorkOrder EntityKind = "work_order"
	EntityTask      EntityKind = "task"
	EntityProject   EntityKind = "project"
	EntityClient    EntityKind = "client"
)

// ParseEntityKind converts a structured-payload identifier into an EntityKind.
// Identifiers outside the fixed vocabulary report false.
func ParseEntityKind(s string) (EntityKind, bool) {
	switch k := EntityKind(s); k {
	case EntityPersonnel, EntityWorkOrder, EntityTask, EntityProject, EntityClient:
		return k, true
	default:
		return "", false
	}
}

// Marker is the notation that introduced an entity.
type Marker string

const (
	MarkerPersonnel  Marker = "@"
	MarkerWorkOrder  Marker = "#"
	MarkerTask       Marker = "/"
	MarkerProject    Marker = "+"
	MarkerClient     Marker = "&"
	MarkerStructured Marker = "="
)

// SymbolMarkers lists the prefix symbols in scan order.
var SymbolMarkers = []Marker{MarkerPersonnel, MarkerWorkOrder, MarkerTask, MarkerProject, MarkerClient}

// Kind returns the entity kind a prefix symbol introduces.
func (m Marker) Kind() (EntityKind, bool) {
	switch m {
	case MarkerPersonnel:
		return EntityPersonnel, true
	case MarkerWorkOrder:
		return EntityWorkOrder, true
	case MarkerTask:
		return EntityTask, true
	case MarkerProject:
		return EntityProject, true
	case MarkerClient:
		return EntityClient, true
	default:
		return "", false
	}
}

// Span is a half-open [Start, End) range of rune offsets into the original text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether s and o share at least one rune.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// EntityMatch is one recognized reference inside the input text.
type EntityMatch struct {
	Kind   EntityKind
	Value  string
	Marker Marker
	Span   Span
}

// Package schemascope models a fixed relational database schema and exposes
// lookups over it. The dataset is static: it is loaded once at startup and
// never mutated, so a Model may be shared freely across readers.
package schemascope

import "fmt"

// ObjectType is the kind of a schema object.
type ObjectType string

// Object type constants.
const (
	TypeTable    ObjectType = "table"
	TypeEnum     ObjectType = "enum"
	TypeView     ObjectType = "view"
	TypeFunction ObjectType = "function"
	TypeTrigger  ObjectType = "trigger"
)

// ObjectTypes lists all kinds in display order.
var ObjectTypes = []ObjectType{TypeTable, TypeEnum, TypeView, TypeFunction, TypeTrigger}

// ForeignKey is a column-level reference to a row-identifying column of
// another table. The target is resolved by table name; an unresolvable
// target is a documentation-data concern, not an error.
type ForeignKey struct {
	Table  string `yaml:"table" json:"table"`
	Column string `yaml:"column" json:"column"`
}

// Column is a single table column.
type Column struct {
	Name       string      `yaml:"name" json:"name"`
	DataType   string      `yaml:"type" json:"type"`
	Nullable   bool        `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	PrimaryKey bool        `yaml:"pk,omitempty" json:"pk,omitempty"`
	Unique     bool        `yaml:"unique,omitempty" json:"unique,omitempty"`
	ForeignKey *ForeignKey `yaml:"references,omitempty" json:"references,omitempty"`
	Comment    string      `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Index is a database index over one or more columns. Column order matters:
// only the leading column accelerates lookups keyed solely on it.
type Index struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []string `yaml:"columns" json:"columns"`
	Unique  bool     `yaml:"unique,omitempty" json:"unique,omitempty"`
	Partial string   `yaml:"partial,omitempty" json:"partial,omitempty"`
	Method  string   `yaml:"method,omitempty" json:"method,omitempty"`
}

// Object is a named schema entity of one of the five kinds. Only the payload
// matching Type is populated.
type Object struct {
	Key     string     `yaml:"key" json:"key"`
	Name    string     `yaml:"name" json:"name"`
	Type    ObjectType `yaml:"type" json:"type"`
	Domain  string     `yaml:"domain,omitempty" json:"domain,omitempty"`
	Comment string     `yaml:"comment,omitempty" json:"comment,omitempty"`

	// Table payload.
	Columns []Column `yaml:"columns,omitempty" json:"columns,omitempty"`
	Indexes []Index  `yaml:"indexes,omitempty" json:"indexes,omitempty"`

	// Enum payload.
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`

	// View payload: names of the base tables the view reads from.
	BaseTables []string `yaml:"base_tables,omitempty" json:"base_tables,omitempty"`
}

// Model provides O(1) lookup of schema objects by key and grouped retrieval
// by kind. It is immutable after construction.
type Model struct {
	objects     []*Object
	byKey       map[string]*Object
	byType      map[ObjectType][]*Object
	tableByName map[string]*Object
}

// NewModel builds a Model from a raw object list. Entries missing a name or
// type are rejected: without a valid schema the application is unusable, so
// this is a fatal load error rather than a soft miss.
func NewModel(objects []*Object) (*Model, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyDataset
	}

	m := &Model{
		objects:     objects,
		byKey:       make(map[string]*Object, len(objects)),
		byType:      make(map[ObjectType][]*Object),
		tableByName: make(map[string]*Object),
	}

	for i, obj := range objects {
		if obj.Name == "" || obj.Type == "" {
			return nil, fmt.Errorf("object %d: %w", i, ErrMalformedObject)
		}

		if obj.Key == "" {
			obj.Key = string(obj.Type) + ":" + obj.Name
		}

		if _, exists := m.byKey[obj.Key]; exists {
			return nil, fmt.Errorf("object %q: %w", obj.Key, ErrDuplicateKey)
		}

		m.byKey[obj.Key] = obj
		m.byType[obj.Type] = append(m.byType[obj.Type], obj)

		if obj.Type == TypeTable {
			m.tableByName[obj.Name] = obj
		}
	}

	return m, nil
}

// ByKey returns the object with the given key. Callers must degrade
// gracefully on a miss (stale keys are expected during re-renders), so this
// reports "not found" instead of failing.
func (m *Model) ByKey(key string) (*Object, bool) {
	obj, ok := m.byKey[key]

	return obj, ok
}

// ByType returns all objects of the given kind in dataset order. The result
// is stable across calls; callers must not mutate it.
func (m *Model) ByType(t ObjectType) []*Object {
	return m.byType[t]
}

// Tables is shorthand for ByType(TypeTable).
func (m *Model) Tables() []*Object {
	return m.byType[TypeTable]
}

// TableByName resolves a table by its display name. FK targets reference
// tables by name, which is unique within the table kind.
func (m *Model) TableByName(name string) (*Object, bool) {
	t, ok := m.tableByName[name]

	return t, ok
}

// Objects returns every object in dataset order.
func (m *Model) Objects() []*Object {
	return m.objects
}

// Len returns the total object count.
func (m *Model) Len() int {
	return len(m.objects)
}

package schemascope

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled object-filter expression. Expressions evaluate
// against one object at a time and must produce a boolean, e.g.
//
//	type == "table" && domain == "billing"
//	"client_id" in columns
//	name startsWith "work_"
type Filter struct {
	src     string
	program *vm.Program
}

// filterEnv is the expression environment for a single object.
type filterEnv struct {
	Name    string   `expr:"name"`
	Type    string   `expr:"type"`
	Domain  string   `expr:"domain"`
	Columns []string `expr:"columns"`
	HasFK   bool     `expr:"has_fk"`
}

func envFor(obj *Object) filterEnv {
	env := filterEnv{
		Name:   obj.Name,
		Type:   string(obj.Type),
		Domain: obj.Domain,
	}

	for _, col := range obj.Columns {
		env.Columns = append(env.Columns, col.Name)

		if col.ForeignKey != nil {
			env.HasFK = true
		}
	}

	return env
}

// CompileFilter compiles a filter expression. Compilation is the only place
// a user-supplied expression can fail; matching a valid program over the
// in-memory dataset does not.
func CompileFilter(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}

	return &Filter{src: src, program: program}, nil
}

// Match reports whether the object satisfies the filter.
func (f *Filter) Match(obj *Object) bool {
	out, err := expr.Run(f.program, envFor(obj))
	if err != nil {
		return false
	}

	b, ok := out.(bool)

	return ok && b
}

// Apply returns the objects satisfying the filter, preserving input order.
func (f *Filter) Apply(objects []*Object) []*Object {
	var matched []*Object

	for _, obj := range objects {
		if f.Match(obj) {
			matched = append(matched, obj)
		}
	}

	return matched
}

// String returns the original expression source.
func (f *Filter) String() string {
	return f.src
}

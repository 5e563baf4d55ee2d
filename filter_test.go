package schemascope_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	schemascope "github.com/tyltnine/schemascope"
)

func TestCompileFilter(t *testing.T) {
	t.Parallel()

	objects := []*schemascope.Object{
		{
			Name:   "invoices",
			Type:   schemascope.TypeTable,
			Domain: "billing",
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
				{Name: "client_id", DataType: "bigint", ForeignKey: &schemascope.ForeignKey{Table: "clients", Column: "id"}},
			},
		},
		{
			Name:   "clients",
			Type:   schemascope.TypeTable,
			Domain: "directory",
			Columns: []schemascope.Column{
				{Name: "id", DataType: "bigint", PrimaryKey: true},
			},
		},
		{Name: "invoice_status", Type: schemascope.TypeEnum, Domain: "billing"},
	}

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "by domain",
			src:  `domain == "billing"`,
			want: []string{"invoices", "invoice_status"},
		},
		{
			name: "by type and domain",
			src:  `type == "table" && domain == "billing"`,
			want: []string{"invoices"},
		},
		{
			name: "by column membership",
			src:  `"client_id" in columns`,
			want: []string{"invoices"},
		},
		{
			name: "by fk presence",
			src:  `has_fk`,
			want: []string{"invoices"},
		},
		{
			name: "no matches",
			src:  `domain == "nowhere"`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, err := schemascope.CompileFilter(tt.src)
			if err != nil {
				t.Fatalf("CompileFilter(%q): %v", tt.src, err)
			}

			var got []string
			for _, obj := range filter.Apply(objects) {
				got = append(got, obj.Name)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileFilter_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := schemascope.CompileFilter(`name ==`); err == nil {
		t.Error("expected compile error for truncated expression")
	}

	// Non-boolean expressions are rejected at compile time.
	if _, err := schemascope.CompileFilter(`name`); err == nil {
		t.Error("expected compile error for non-boolean expression")
	}
}

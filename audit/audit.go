// Package audit runs read-only checks over a schema model. The flagship
// check flags foreign-key columns without a covering index; the remaining
// rules are lighter schema hygiene hints. Running a rule set twice on
// unchanged input yields identical findings.
package audit

import (
	"encoding/json"
	"fmt"

	schemascope "github.com/tyltnine/schemascope"
)

// Severity classifies a finding.
type Severity int

// Severity levels.
const (
	SeverityWarning Severity = iota
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Finding is one audit result. For the fk-missing-index rule,
// ReferencedTable and SuggestedIndex are always populated.
type Finding struct {
	Rule            string   `json:"rule"`
	Severity        Severity `json:"severity"`
	Table           string   `json:"table"`
	Column          string   `json:"column,omitempty"`
	ReferencedTable string   `json:"referencedTable,omitempty"`
	SuggestedIndex  string   `json:"suggestedIndex,omitempty"`
	Detail          string   `json:"detail"`
}

// Rule is a single audit check. Inspired by the go/analysis.Analyzer
// pattern: a rule inspects the model and appends findings.
type Rule struct {
	// Name is a short identifier for the rule.
	Name string

	// Doc is a brief description of what the rule checks.
	Doc string

	// Severity is the severity of findings from this rule.
	Severity Severity

	// Run executes the rule and returns its findings in table order.
	Run func(model *schemascope.Model) []Finding
}

// Audit runs the fk-missing-index rule, the audit contract consumed by the
// diagram and documentation renderers.
func Audit(model *schemascope.Model) []Finding {
	return fkMissingIndexRule.Run(model)
}

// Run executes a rule set in order and concatenates the findings.
func Run(model *schemascope.Model, rules []*Rule) []Finding {
	var findings []Finding

	for _, rule := range rules {
		findings = append(findings, rule.Run(model)...)
	}

	return findings
}

// DefaultRules returns all built-in audit rules.
func DefaultRules() []*Rule {
	return []*Rule{
		fkMissingIndexRule,
		noPrimaryKeyRule,
		nullableFKRule,
	}
}

// ----------------------------------------------------------------------------
// Rule: fk-missing-index
// ----------------------------------------------------------------------------

var fkMissingIndexRule = &Rule{
	Name:     "fk-missing-index",
	Doc:      "Reports foreign-key columns without a covering index.",
	Severity: SeverityWarning,
}

// Run funcs are wired in init to avoid initialization cycles: each check
// reads its rule variable back for Name and Severity.
func init() {
	fkMissingIndexRule.Run = checkFKIndexes
	noPrimaryKeyRule.Run = checkPrimaryKeys
	nullableFKRule.Run = checkNullableFKs
}

func checkFKIndexes(model *schemascope.Model) []Finding {
	var findings []Finding

	for _, table := range model.Tables() {
		for _, col := range table.Columns {
			if col.ForeignKey == nil {
				continue
			}

			if covered(table.Indexes, col.Name) {
				continue
			}

			findings = append(findings, Finding{
				Rule:            fkMissingIndexRule.Name,
				Severity:        fkMissingIndexRule.Severity,
				Table:           table.Name,
				Column:          col.Name,
				ReferencedTable: col.ForeignKey.Table,
				SuggestedIndex:  suggestIndex(table.Name, col.Name),
				Detail: fmt.Sprintf("foreign key %s.%s -> %s has no covering index",
					table.Name, col.Name, col.ForeignKey.Table),
			})
		}
	}

	return findings
}

// covered reports whether some index has the column as its FIRST covered
// column. A non-leading position in a composite index does not accelerate
// lookups keyed solely on that column, so it does not count.
func covered(indexes []schemascope.Index, column string) bool {
	for _, idx := range indexes {
		if len(idx.Columns) > 0 && idx.Columns[0] == column {
			return true
		}
	}

	return false
}

func suggestIndex(table, column string) string {
	return fmt.Sprintf("CREATE INDEX %s_%s_idx ON %s (%s);", table, column, table, column)
}

// ----------------------------------------------------------------------------
// Rule: no-primary-key
// ----------------------------------------------------------------------------

var noPrimaryKeyRule = &Rule{
	Name:     "no-primary-key",
	Doc:      "Reports tables without any primary-key column.",
	Severity: SeverityWarning,
}

func checkPrimaryKeys(model *schemascope.Model) []Finding {
	var findings []Finding

	for _, table := range model.Tables() {
		hasPK := false

		for _, col := range table.Columns {
			if col.PrimaryKey {
				hasPK = true

				break
			}
		}

		if !hasPK {
			findings = append(findings, Finding{
				Rule:     noPrimaryKeyRule.Name,
				Severity: noPrimaryKeyRule.Severity,
				Table:    table.Name,
				Detail:   fmt.Sprintf("table %s has no primary key", table.Name),
			})
		}
	}

	return findings
}

// ----------------------------------------------------------------------------
// Rule: nullable-fk
// ----------------------------------------------------------------------------

var nullableFKRule = &Rule{
	Name:     "nullable-fk",
	Doc:      "Reports nullable foreign-key columns, which allow orphan-style rows.",
	Severity: SeverityHint,
}

func checkNullableFKs(model *schemascope.Model) []Finding {
	var findings []Finding

	for _, table := range model.Tables() {
		for _, col := range table.Columns {
			if col.ForeignKey == nil || !col.Nullable {
				continue
			}

			findings = append(findings, Finding{
				Rule:            nullableFKRule.Name,
				Severity:        nullableFKRule.Severity,
				Table:           table.Name,
				Column:          col.Name,
				ReferencedTable: col.ForeignKey.Table,
				Detail: fmt.Sprintf("foreign key %s.%s -> %s is nullable",
					table.Name, col.Name, col.ForeignKey.Table),
			})
		}
	}

	return findings
}

package validation

import (
	"fmt"
	"strings"

	"github.com/safar/loja/internal/models"
)

// Rule names carried by violations.
const (
	RuleRequired    = "required"
	RuleMinLength   = "min_length"
	RuleMaxLength   = "max_length"
	RuleLength      = "length"
	RuleNonNegative = "non_negative"
	RuleRange       = "range"
	RuleEmail       = "email"
	RuleUnique      = "unique"
	RuleExists      = "exists"
	RulePrecision   = "decimal_precision"
)

type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error is returned when an entity fails one or more rules. Nothing is
// written when it is returned.
type Error struct {
	Kind       models.Kind `json:"kind"`
	Violations []Violation `json:"violations"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

// Has reports whether the error carries a violation of rule on field.
func (e *Error) Has(field, rule string) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}
	return false
}

package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/safar/loja/internal/models"
)

// Money columns are NUMERIC(10,2).
const (
	moneyDigits = 10
	moneyPlaces = 2
)

var emailValidator = validator.New()

// Rule checks one entity and returns the violations it finds. Rules are pure
// functions of the entity's field values.
type Rule func(e models.Entity) []Violation

// typed adapts a rule written against a concrete entity type.
func typed[T models.Entity](fn func(T) []Violation) Rule {
	return func(e models.Entity) []Violation {
		return fn(e.(T))
	}
}

func check(results ...*Violation) []Violation {
	var out []Violation
	for _, v := range results {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func required(field, value string) *Violation {
	if value == "" {
		return &Violation{Field: field, Rule: RuleRequired, Message: "this field cannot be blank"}
	}
	return nil
}

func requiredDate(field string, value models.Date) *Violation {
	if value.IsZero() {
		return &Violation{Field: field, Rule: RuleRequired, Message: "this field cannot be null"}
	}
	return nil
}

func minLength(field, value string, n int) *Violation {
	if utf8.RuneCountInString(value) < n {
		return &Violation{Field: field, Rule: RuleMinLength, Message: fmt.Sprintf("must have at least %d characters", n)}
	}
	return nil
}

func maxLength(field, value string, n int) *Violation {
	if utf8.RuneCountInString(value) > n {
		return &Violation{Field: field, Rule: RuleMaxLength, Message: fmt.Sprintf("must have at most %d characters", n)}
	}
	return nil
}

func optionalMaxLength(field string, value *string, n int) *Violation {
	if value == nil {
		return nil
	}
	return maxLength(field, *value, n)
}

// exactLength only fires on non-empty values; blank is reported by required.
func exactLength(field, value string, n int) *Violation {
	if value != "" && utf8.RuneCountInString(value) != n {
		return &Violation{Field: field, Rule: RuleLength, Message: fmt.Sprintf("must have exactly %d characters", n)}
	}
	return nil
}

func nonNegative(field string, value decimal.Decimal) *Violation {
	if value.IsNegative() {
		return &Violation{Field: field, Rule: RuleNonNegative, Message: "cannot be negative"}
	}
	return nil
}

func nonNegativeInt(field string, value int) *Violation {
	if value < 0 {
		return &Violation{Field: field, Rule: RuleNonNegative, Message: "cannot be negative"}
	}
	return nil
}

func between(field string, value, lo, hi int) *Violation {
	if value < lo || value > hi {
		return &Violation{Field: field, Rule: RuleRange, Message: fmt.Sprintf("must be between %d and %d", lo, hi)}
	}
	return nil
}

// money checks that value fits a NUMERIC(10,2) column.
func money(field string, value decimal.Decimal) *Violation {
	if !value.Round(moneyPlaces).Equal(value) {
		return &Violation{Field: field, Rule: RulePrecision, Message: fmt.Sprintf("must have at most %d decimal places", moneyPlaces)}
	}
	if !value.Truncate(0).Abs().LessThan(decimal.New(1, moneyDigits-moneyPlaces)) {
		return &Violation{Field: field, Rule: RulePrecision, Message: fmt.Sprintf("must have at most %d digits", moneyDigits)}
	}
	return nil
}

// email uses the validator package's RFC 5322 subset. Blank values are left
// to required.
func email(field, value string) *Violation {
	if value == "" {
		return nil
	}
	if err := emailValidator.Var(value, "email"); err != nil {
		return &Violation{Field: field, Rule: RuleEmail, Message: "enter a valid email address"}
	}
	return nil
}

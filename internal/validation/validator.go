package validation

import (
	"context"
	"fmt"

	"github.com/safar/loja/internal/models"
)

// Lookup is the read side of the store the validator needs for the checks
// that look past the entity itself.
type Lookup interface {
	Exists(ctx context.Context, kind models.Kind, id int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

// LookupRule is a rule that consults stored state.
type LookupRule func(ctx context.Context, lk Lookup, e models.Entity) ([]Violation, error)

type Validator struct {
	fields  map[models.Kind][]Rule
	lookups map[models.Kind][]LookupRule
}

// New returns a validator loaded with the rule catalogue for every kind.
func New() *Validator {
	v := &Validator{
		fields:  fieldRules,
		lookups: make(map[models.Kind][]LookupRule, len(models.Kinds)),
	}
	for _, kind := range models.Kinds {
		v.lookups[kind] = []LookupRule{references}
	}
	v.lookups[models.KindUser] = append(v.lookups[models.KindUser], uniqueEmail)
	return v
}

// Rules returns the ordered field rules registered for kind.
func (v *Validator) Rules(kind models.Kind) []Rule {
	return v.fields[kind]
}

// CheckFields runs only the pure field rules.
func (v *Validator) CheckFields(e models.Entity) ([]Violation, error) {
	rules, ok := v.fields[e.Kind()]
	if !ok {
		return nil, fmt.Errorf("no validation rules for %s", e.Kind())
	}
	var out []Violation
	for _, rule := range rules {
		out = append(out, rule(e)...)
	}
	return out, nil
}

// Validate runs every rule for the entity's kind. It returns *Error when at
// least one rule is violated, and a plain error when a lookup fails.
func (v *Validator) Validate(ctx context.Context, lk Lookup, e models.Entity) error {
	violations, err := v.CheckFields(e)
	if err != nil {
		return err
	}

	for _, rule := range v.lookups[e.Kind()] {
		found, err := rule(ctx, lk, e)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	if len(violations) > 0 {
		return &Error{Kind: e.Kind(), Violations: violations}
	}
	return nil
}

func references(ctx context.Context, lk Lookup, e models.Entity) ([]Violation, error) {
	var out []Violation
	for _, ref := range e.References() {
		if ref.ID == 0 && ref.Required {
			out = append(out, Violation{
				Field:   ref.Field,
				Rule:    RuleRequired,
				Message: fmt.Sprintf("%s is required", ref.Kind),
			})
			continue
		}
		if ref.ID <= 0 {
			out = append(out, Violation{
				Field:   ref.Field,
				Rule:    RuleExists,
				Message: fmt.Sprintf("%s %d does not exist", ref.Kind, ref.ID),
			})
			continue
		}

		exists, err := lk.Exists(ctx, ref.Kind, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("check %s %d exists: %w", ref.Kind, ref.ID, err)
		}
		if !exists {
			out = append(out, Violation{
				Field:   ref.Field,
				Rule:    RuleExists,
				Message: fmt.Sprintf("%s %d does not exist", ref.Kind, ref.ID),
			})
		}
	}
	return out, nil
}

// uniqueEmail is a best-effort pre-check; the unique index on users.email
// is authoritative.
func uniqueEmail(ctx context.Context, lk Lookup, e models.Entity) ([]Violation, error) {
	u := e.(*models.User)
	if u.Email == "" {
		return nil, nil
	}
	taken, err := lk.EmailTaken(ctx, u.Email, u.ID)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return []Violation{UniqueEmailViolation()}, nil
	}
	return nil, nil
}

func UniqueEmailViolation() Violation {
	return Violation{Field: "email", Rule: RuleUnique, Message: "user with this email already exists"}
}

package integrity

import (
	"context"
	"fmt"

	"github.com/safar/loja/internal/models"
)

// Dependents lists the ids of child rows that reference parentID through rel.
type Dependents interface {
	DependentIDs(ctx context.Context, rel Relation, parentID int64) ([]int64, error)
}

type Target struct {
	Kind models.Kind
	ID   int64
}

// Plan is the full set of rows removed by one delete, children before
// parents, so executing it in order never violates a foreign key.
type Plan struct {
	Root    Target
	Deletes []Target
}

// Count returns how many rows of kind the plan removes.
func (p *Plan) Count(kind models.Kind) int {
	n := 0
	for _, t := range p.Deletes {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// BuildPlan walks the relation table from the root. A Restrict relation with
// dependents anywhere in the cascade fails the whole plan with *Error.
func BuildPlan(ctx context.Context, deps Dependents, kind models.Kind, id int64) (*Plan, error) {
	p := &planner{
		deps: deps,
		root: Target{Kind: kind, ID: id},
		seen: make(map[Target]bool),
	}
	if err := p.visit(ctx, p.root); err != nil {
		return nil, err
	}
	return &Plan{Root: p.root, Deletes: p.order}, nil
}

type planner struct {
	deps  Dependents
	root  Target
	seen  map[Target]bool
	order []Target
}

func (p *planner) visit(ctx context.Context, t Target) error {
	if p.seen[t] {
		return nil
	}
	p.seen[t] = true

	for _, rel := range ChildrenOf(t.Kind) {
		ids, err := p.deps.DependentIDs(ctx, rel, t.ID)
		if err != nil {
			return fmt.Errorf("list %s dependents of %s %d: %w", rel.Child, t.Kind, t.ID, err)
		}
		if len(ids) == 0 {
			continue
		}

		if rel.Policy == Restrict {
			return &Error{
				Kind:     p.root.Kind,
				ID:       p.root.ID,
				Parent:   t.Kind,
				ParentID: t.ID,
				Child:    rel.Child,
				Column:   rel.Column,
				Count:    len(ids),
			}
		}

		for _, childID := range ids {
			if err := p.visit(ctx, Target{Kind: rel.Child, ID: childID}); err != nil {
				return err
			}
		}
	}

	p.order = append(p.order, t)
	return nil
}

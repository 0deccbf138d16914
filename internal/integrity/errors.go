package integrity

import (
	"errors"
	"fmt"

	"github.com/safar/loja/internal/models"
)

// ErrNoRelation is returned when two kinds are not linked by any relation
// of the policy table.
var ErrNoRelation = errors.New("no relation between kinds")

// Error is returned when a delete would remove a row that a Restrict
// relation protects. Nothing is deleted when it is returned.
type Error struct {
	Kind     models.Kind `json:"kind"`
	ID       int64       `json:"id"`
	Parent   models.Kind `json:"parent"`
	ParentID int64       `json:"parent_id"`
	Child    models.Kind `json:"child"`
	Column   string      `json:"column"`
	Count    int         `json:"count"`
}

func (e *Error) Error() string {
	if e.Parent == e.Kind && e.ParentID == e.ID {
		return fmt.Sprintf("cannot delete %s %d: referenced by %d %s row(s) through %s",
			e.Kind, e.ID, e.Count, e.Child, e.Column)
	}
	return fmt.Sprintf("cannot delete %s %d: cascades to %s %d, which is referenced by %d %s row(s) through %s",
		e.Kind, e.ID, e.Parent, e.ParentID, e.Count, e.Child, e.Column)
}

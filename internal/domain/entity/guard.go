// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Guard is a patrol guard together with the checkpoints assigned to them.
type Guard struct {
	ID       GuardID `json:"id"`
	Name     string  `json:"name"`
	IsActive *bool   `json:"isActive,omitempty"` // nil is treated as active
	PinHash  string  `json:"-"`

	AssignedCheckpoints []CheckpointID `json:"assignedCheckpoints"`

	// CheckpointResetDates holds the last time an admin reset (reassigned) a checkpoint for this guard.
	// A missing entry means the assignment counts from whenever it began.
	CheckpointResetDates map[CheckpointID]time.Time `json:"checkpointResetDates"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Active reports whether the guard takes part in patrols. Absence of the flag means active.
func (g *Guard) Active() bool {
	return g.IsActive == nil || *g.IsActive
}

// Assignments returns the guard's assigned checkpoints with duplicates removed, in assignment order.
func (g *Guard) Assignments() []CheckpointID {
	seen := make(map[CheckpointID]struct{}, len(g.AssignedCheckpoints))
	out := make([]CheckpointID, 0, len(g.AssignedCheckpoints))
	for _, id := range g.AssignedCheckpoints {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// IsAssigned reports whether checkpointID is in the guard's assigned set.
func (g *Guard) IsAssigned(checkpointID CheckpointID) bool {
	for _, id := range g.AssignedCheckpoints {
		if id == checkpointID {
			return true
		}
	}

	return false
}

// ResetDate returns the reset timestamp recorded for a checkpoint, if any.
func (g *Guard) ResetDate(checkpointID CheckpointID) (time.Time, bool) {
	if g.CheckpointResetDates == nil {
		return time.Time{}, false
	}
	t, ok := g.CheckpointResetDates[checkpointID]
	if !ok || t.IsZero() {
		return time.Time{}, false
	}

	return t, true
}

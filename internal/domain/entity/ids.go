// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"strings"

	"patrol/internal/errors"
)

// GuardID identifies a guard. Guard ids are integers everywhere in the system; string forms
// (route params, token subjects, notification ids) go through ParseGuardID and String.
type GuardID int64

// String returns the canonical decimal form of the id.
func (id GuardID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseGuardID converts the canonical string form back into a GuardID.
func ParseGuardID(s string) (GuardID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid guard id %q", s)
	}
	if v <= 0 {
		return 0, errors.Errorf("invalid guard id %q", s)
	}

	return GuardID(v), nil
}

// CheckpointID identifies a checkpoint.
type CheckpointID string

// String returns the id as a plain string.
func (id CheckpointID) String() string {
	return string(id)
}

// AdminID identifies an admin for notification state purposes.
type AdminID string

// AssignmentKey is the (guard, checkpoint) pair an assignment is made of.
type AssignmentKey struct {
	GuardID      GuardID
	CheckpointID CheckpointID
}

// String renders the key as "<guard>-<checkpoint>", the form used in notification ids.
func (k AssignmentKey) String() string {
	return k.GuardID.String() + "-" + k.CheckpointID.String()
}

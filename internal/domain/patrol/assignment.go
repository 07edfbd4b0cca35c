package patrol

import (
	"strings"
	"time"

	"patrol/internal/domain/entity"
)

// IsDesignated reports whether a guard may scan a QR code printed for designatedUser.
// A blank designated user means anybody may scan it.
func IsDesignated(designatedUser, guardName string) bool {
	want := strings.TrimSpace(designatedUser)
	if want == "" {
		return true
	}

	return strings.EqualFold(want, strings.TrimSpace(guardName))
}

// Baseline returns the earliest time a scan counts toward the guard's assignment of checkpointID
// within [windowStart, windowEnd). A reset date strictly after windowStart moves the baseline
// forward. The second result is false when the assignment does not overlap the window at all.
func Baseline(guard *entity.Guard, checkpointID entity.CheckpointID, windowStart, windowEnd time.Time) (time.Time, bool) {
	baseline := windowStart
	if reset, ok := guard.ResetDate(checkpointID); ok && reset.After(windowStart) {
		baseline = reset
	}
	if !baseline.Before(windowEnd) {
		return baseline, false
	}

	return baseline, true
}

// ActiveGuards filters guards down to the active ones.
func ActiveGuards(guards []*entity.Guard) []*entity.Guard {
	out := make([]*entity.Guard, 0, len(guards))
	for _, g := range guards {
		if g != nil && g.Active() {
			out = append(out, g)
		}
	}

	return out
}

package patrol

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"patrol/internal/domain/entity"
)

// ReasonNotAssigned is recorded when a guard scans a checkpoint outside their assigned set.
const ReasonNotAssigned = "Checkpoint not assigned to this guard"

// AlertPolicy holds the thresholds of the notification detectors.
type AlertPolicy struct {
	LocationFailureWindow    time.Duration
	LocationFailureThreshold int
	StaleAfter               time.Duration
	Lookback                 time.Duration
	UnauthorizedLimit        int
	SuccessLimit             int
}

// DefaultAlertPolicy returns the thresholds the dashboard ships with.
func DefaultAlertPolicy() AlertPolicy {
	return AlertPolicy{
		LocationFailureWindow:    30 * time.Minute,
		LocationFailureThreshold: 3,
		StaleAfter:               2 * time.Hour,
		Lookback:                 24 * time.Hour,
		UnauthorizedLimit:        10,
		SuccessLimit:             15,
	}
}

func (p AlertPolicy) withDefaults() AlertPolicy {
	def := DefaultAlertPolicy()
	if p.LocationFailureWindow <= 0 {
		p.LocationFailureWindow = def.LocationFailureWindow
	}
	if p.LocationFailureThreshold <= 0 {
		p.LocationFailureThreshold = def.LocationFailureThreshold
	}
	if p.StaleAfter <= 0 {
		p.StaleAfter = def.StaleAfter
	}
	if p.Lookback <= 0 {
		p.Lookback = def.Lookback
	}
	if p.UnauthorizedLimit <= 0 {
		p.UnauthorizedLimit = def.UnauthorizedLimit
	}
	if p.SuccessLimit <= 0 {
		p.SuccessLimit = def.SuccessLimit
	}

	return p
}

// AlertInput is the snapshot the detectors run over.
type AlertInput struct {
	Now         time.Time
	Guards      []*entity.Guard
	Checkpoints []*entity.Checkpoint
	Scans       []*entity.Scan
}

var locationKeywords = []string{"out of range", "location", "gps"}

// BuildNotifications runs every detector over the snapshot and returns the feed newest first.
// Ids are derived from the underlying data so the same condition always yields the same id.
func BuildNotifications(in AlertInput, policy AlertPolicy) []entity.AdminNotification {
	policy = policy.withDefaults()
	names := newDirectory(in.Guards, in.Checkpoints)
	scans := newestFirst(in.Scans)

	var feed []entity.AdminNotification
	feed = append(feed, locationFailures(in.Now, scans, names, policy)...)
	feed = append(feed, reassignNeeded(in.Now, in.Guards, scans, names, policy)...)
	feed = append(feed, unauthorizedAttempts(in.Now, scans, names, policy)...)
	feed = append(feed, successfulScans(in.Now, scans, names, policy)...)

	SortNotifications(feed)

	return feed
}

// SortNotifications orders a feed newest first, breaking ties by id.
func SortNotifications(feed []entity.AdminNotification) {
	slices.SortStableFunc(feed, func(a, b entity.AdminNotification) int {
		if c := b.Time.Compare(a.Time); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}

type failureGroup struct {
	key    entity.AssignmentKey
	latest time.Time
	count  int
}

func locationFailures(now time.Time, scans []*entity.Scan, names directory, p AlertPolicy) []entity.AdminNotification {
	since := now.Add(-p.LocationFailureWindow)
	groups := make(map[entity.AssignmentKey]*failureGroup)
	order := make([]entity.AssignmentKey, 0)

	for _, s := range scans {
		if s.Succeeded() || s.ScannedAt.Before(since) || s.ScannedAt.After(now) {
			continue
		}
		if !containsAny(s.Reason(), locationKeywords) {
			continue
		}
		g, ok := groups[s.Key()]
		if !ok {
			g = &failureGroup{key: s.Key()}
			groups[s.Key()] = g
			order = append(order, s.Key())
		}
		g.count++
		if s.ScannedAt.After(g.latest) {
			g.latest = s.ScannedAt
		}
	}

	out := make([]entity.AdminNotification, 0)
	for _, key := range order {
		g := groups[key]
		if g.count < p.LocationFailureThreshold {
			continue
		}
		guard, checkpoint := names.guardName(key.GuardID), names.checkpointName(key.CheckpointID)
		out = append(out, entity.AdminNotification{
			ID:             "location-failures-" + key.String(),
			Type:           entity.NotificationTypeLocationFailures,
			Severity:       entity.SeverityCritical,
			Title:          "Repeated Location Failures",
			Detail:         fmt.Sprintf("%s failed location verification %d times at %s in the last %d minutes", guard, g.count, checkpoint, int(p.LocationFailureWindow.Minutes())),
			Time:           g.latest,
			AggregateCount: g.count,
			Action:         assignmentAction("Review guard", key),
		})
	}

	return out
}

// reassignNeeded expects scans sorted newest first.
func reassignNeeded(now time.Time, guards []*entity.Guard, scans []*entity.Scan, names directory, p AlertPolicy) []entity.AdminNotification {
	latest := make(map[entity.AssignmentKey]*entity.Scan)
	for _, s := range scans {
		if _, seen := latest[s.Key()]; seen {
			continue
		}
		if s.Succeeded() && !s.ScannedAt.After(now) {
			latest[s.Key()] = s
		}
	}

	out := make([]entity.AdminNotification, 0)
	for _, g := range ActiveGuards(guards) {
		for _, cp := range g.Assignments() {
			baseline, ok := Baseline(g, cp, time.Time{}, now)
			if !ok {
				continue
			}
			key := entity.AssignmentKey{GuardID: g.ID, CheckpointID: cp}

			last, ok := latest[key]
			if !ok || last.ScannedAt.Before(baseline) {
				continue
			}

			age := now.Sub(last.ScannedAt)
			if age <= p.StaleAfter {
				continue
			}
			hours := int(math.Floor(age.Hours()))
			out = append(out, entity.AdminNotification{
				ID:       "reassign-" + key.String() + "-" + last.ID,
				Type:     entity.NotificationTypeReassignNeeded,
				Severity: entity.SeverityWarning,
				Title:    "Reassign Needed",
				Detail:   fmt.Sprintf("%s last completed %s %d hours ago", names.guardName(g.ID), names.checkpointName(cp), hours),
				Time:     last.ScannedAt.Add(p.StaleAfter),
				Action:   assignmentAction("Reassign checkpoint", key),
			})
		}
	}

	return out
}

func unauthorizedAttempts(now time.Time, scans []*entity.Scan, names directory, p AlertPolicy) []entity.AdminNotification {
	since := now.Add(-p.Lookback)
	out := make([]entity.AdminNotification, 0, p.UnauthorizedLimit)
	for _, s := range scans {
		if len(out) == p.UnauthorizedLimit {
			break
		}
		if s.Succeeded() || s.ScannedAt.Before(since) || s.ScannedAt.After(now) {
			continue
		}
		if !containsAny(s.Reason(), []string{"not assigned"}) {
			continue
		}
		out = append(out, entity.AdminNotification{
			ID:       "unauthorized-" + s.ID,
			Type:     entity.NotificationTypeUnauthorizedScan,
			Severity: entity.SeverityCritical,
			Title:    "Unauthorized Scan Attempt",
			Detail:   fmt.Sprintf("%s scanned %s, which is not assigned to them", names.guardName(s.GuardID), names.checkpointName(s.CheckpointID)),
			Time:     s.ScannedAt,
			Action:   assignmentAction("Review assignments", s.Key()),
		})
	}

	return out
}

func successfulScans(now time.Time, scans []*entity.Scan, names directory, p AlertPolicy) []entity.AdminNotification {
	since := now.Add(-p.Lookback)
	out := make([]entity.AdminNotification, 0, p.SuccessLimit)
	for _, s := range scans {
		if len(out) == p.SuccessLimit {
			break
		}
		if !s.Succeeded() || s.ScannedAt.Before(since) || s.ScannedAt.After(now) {
			continue
		}
		out = append(out, entity.AdminNotification{
			ID:       "scan-" + s.ID,
			Type:     entity.NotificationTypeSuccessfulScan,
			Severity: entity.SeverityOther,
			Title:    "Checkpoint Scanned",
			Detail:   fmt.Sprintf("%s scanned %s", names.guardName(s.GuardID), names.checkpointName(s.CheckpointID)),
			Time:     s.ScannedAt,
			Action: entity.NotificationAction{
				Path:   "/scans",
				Label:  "View scan",
				Params: map[string]string{"scanId": s.ID},
			},
		})
	}

	return out
}

func assignmentAction(label string, key entity.AssignmentKey) entity.NotificationAction {
	return entity.NotificationAction{
		Path:  "/guards",
		Label: label,
		Params: map[string]string{
			"guardId":      key.GuardID.String(),
			"checkpointId": key.CheckpointID.String(),
		},
	}
}

func containsAny(reason string, keywords []string) bool {
	lower := strings.ToLower(reason)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}

	return false
}

// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// NotificationType names the detector that produced a notification.
type NotificationType string

const (
	NotificationTypeLocationFailures NotificationType = "location_failures"
	NotificationTypeReassignNeeded   NotificationType = "reassign_needed"
	NotificationTypeUnauthorizedScan NotificationType = "unauthorized_scan"
	NotificationTypeSuccessfulScan   NotificationType = "successful_scan"
)

// Severity ranks how urgently an admin should look at a notification.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityOther    Severity = "other"
)

// NotificationAction points the dashboard at the screen that resolves a notification.
type NotificationAction struct {
	Path   string            `json:"path"`
	Label  string            `json:"label"`
	Params map[string]string `json:"params,omitempty"`
}

// AdminNotification is one dashboard notification. Notifications are recomputed from the scan log on
// every request; only the per-admin read/ack/delete state is stored.
type AdminNotification struct {
	ID             string             `json:"id"`
	Type           NotificationType   `json:"type"`
	Severity       Severity           `json:"severity"`
	Title          string             `json:"title"`
	Detail         string             `json:"detail"`
	Time           time.Time          `json:"time"`
	AggregateCount int                `json:"aggregateCount,omitempty"`
	Unread         bool               `json:"unread"`
	Acknowledged   bool               `json:"acknowledged"`
	TimeAgoMinutes int                `json:"timeAgoMinutes"`
	Action         NotificationAction `json:"action"`
}

// NotificationState is the read/ack/delete bookkeeping of one admin.
type NotificationState struct {
	AdminID   AdminID             `json:"adminId"`
	Read      map[string]struct{} `json:"-"`
	Acked     map[string]struct{} `json:"-"`
	Deleted   map[string]struct{} `json:"-"`
	ResetAt   *time.Time          `json:"resetAt,omitempty"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// NewNotificationState returns an empty state for adminID.
func NewNotificationState(adminID AdminID) *NotificationState {
	return &NotificationState{
		AdminID: adminID,
		Read:    make(map[string]struct{}),
		Acked:   make(map[string]struct{}),
		Deleted: make(map[string]struct{}),
	}
}

// NotificationStateUpdate is a batch of state changes sent by the dashboard.
type NotificationStateUpdate struct {
	Reads    []string `json:"reads"`
	Acks     []string `json:"acks"`
	Deletes  []string `json:"deletes"`
	ResetAll bool     `json:"resetAll"`
}

// Apply merges an update into the state. Every change is a set insertion, so replaying the same
// batch leaves the state unchanged. A reset runs before the batch's ids are applied.
func (s *NotificationState) Apply(update NotificationStateUpdate, now time.Time) {
	s.ensureSets()

	if update.ResetAll {
		s.Read = make(map[string]struct{})
		s.Acked = make(map[string]struct{})
		s.Deleted = make(map[string]struct{})
		resetAt := now
		s.ResetAt = &resetAt
	}

	for _, id := range update.Reads {
		addID(s.Read, id)
	}
	for _, id := range update.Acks {
		addID(s.Acked, id)
	}
	for _, id := range update.Deletes {
		addID(s.Deleted, id)
		addID(s.Read, id)
		addID(s.Acked, id)
	}

	s.UpdatedAt = now
}

// IsRead reports whether id was marked read.
func (s *NotificationState) IsRead(id string) bool {
	_, ok := s.Read[id]

	return ok
}

// IsAcked reports whether id was acknowledged.
func (s *NotificationState) IsAcked(id string) bool {
	_, ok := s.Acked[id]

	return ok
}

// IsDeleted reports whether id was deleted.
func (s *NotificationState) IsDeleted(id string) bool {
	_, ok := s.Deleted[id]

	return ok
}

// Suppressed reports whether a notification stamped at t falls at or before the last reset.
func (s *NotificationState) Suppressed(t time.Time) bool {
	return s.ResetAt != nil && !t.After(*s.ResetAt)
}

// Clone returns a deep copy of the state.
func (s *NotificationState) Clone() *NotificationState {
	c := &NotificationState{
		AdminID:   s.AdminID,
		Read:      cloneSet(s.Read),
		Acked:     cloneSet(s.Acked),
		Deleted:   cloneSet(s.Deleted),
		UpdatedAt: s.UpdatedAt,
	}
	if s.ResetAt != nil {
		t := *s.ResetAt
		c.ResetAt = &t
	}

	return c
}

// Snapshot returns the serialisable view returned by the state endpoint.
func (s *NotificationState) Snapshot() NotificationStateView {
	return NotificationStateView{
		AdminID:   s.AdminID,
		Reads:     SortedIDs(s.Read),
		Acks:      SortedIDs(s.Acked),
		Deletes:   SortedIDs(s.Deleted),
		ResetAt:   s.ResetAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NotificationStateView is the JSON shape of a NotificationState.
type NotificationStateView struct {
	AdminID   AdminID    `json:"adminId"`
	Reads     []string   `json:"reads"`
	Acks      []string   `json:"acks"`
	Deletes   []string   `json:"deletes"`
	ResetAt   *time.Time `json:"resetAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// SortedIDs returns the members of set in ascending order.
func SortedIDs(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// IDSet builds a set from ids, skipping empty strings.
func IDSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		addID(set, id)
	}

	return set
}

func (s *NotificationState) ensureSets() {
	if s.Read == nil {
		s.Read = make(map[string]struct{})
	}
	if s.Acked == nil {
		s.Acked = make(map[string]struct{})
	}
	if s.Deleted == nil {
		s.Deleted = make(map[string]struct{})
	}
}

func addID(set map[string]struct{}, id string) {
	if id == "" {
		return
	}
	set[id] = struct{}{}
}

func cloneSet(set map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for id := range set {
		out[id] = struct{}{}
	}

	return out
}

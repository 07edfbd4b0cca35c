package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationState_Apply(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	state := NewNotificationState("admin-1")

	update := NotificationStateUpdate{Reads: []string{"a", ""}, Acks: []string{"b"}, Deletes: []string{"c"}}
	state.Apply(update, now)
	first := state.Snapshot()

	assert.Equal(t, []string{"a", "c"}, first.Reads)
	assert.Equal(t, []string{"b", "c"}, first.Acks)
	assert.Equal(t, []string{"c"}, first.Deletes)
	assert.Nil(t, first.ResetAt)

	// replaying the same batch changes nothing but the timestamp
	state.Apply(update, now.Add(time.Second))
	second := state.Snapshot()
	assert.Equal(t, first.Reads, second.Reads)
	assert.Equal(t, first.Acks, second.Acks)
	assert.Equal(t, first.Deletes, second.Deletes)
}

func TestNotificationState_ResetRunsBeforeBatch(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	state := NewNotificationState("admin-1")
	state.Apply(NotificationStateUpdate{Reads: []string{"old"}, Deletes: []string{"gone"}}, now)

	state.Apply(NotificationStateUpdate{ResetAll: true, Reads: []string{"fresh"}}, now.Add(time.Hour))

	assert.Equal(t, []string{"fresh"}, SortedIDs(state.Read))
	assert.Empty(t, state.Deleted)
	require.NotNil(t, state.ResetAt)
	assert.True(t, state.ResetAt.Equal(now.Add(time.Hour)))
	assert.True(t, state.Suppressed(now))
	assert.True(t, state.Suppressed(now.Add(time.Hour)))
	assert.False(t, state.Suppressed(now.Add(2*time.Hour)))
}

func TestNotificationState_CloneIsIndependent(t *testing.T) {
	state := NewNotificationState("admin-1")
	state.Apply(NotificationStateUpdate{Reads: []string{"a"}, ResetAll: true}, time.Now())

	clone := state.Clone()
	clone.Apply(NotificationStateUpdate{Reads: []string{"b"}}, time.Now())

	assert.False(t, state.IsRead("b"))
	assert.True(t, clone.IsRead("a"))
	assert.NotSame(t, state.ResetAt, clone.ResetAt)
}

func TestNotificationState_ZeroValueApply(t *testing.T) {
	var state NotificationState
	state.Apply(NotificationStateUpdate{Acks: []string{"x"}}, time.Now())

	assert.True(t, state.IsAcked("x"))
	assert.False(t, state.IsRead("x"))
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuardID(t *testing.T) {
	id, err := ParseGuardID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, GuardID(42), id)
	assert.Equal(t, "42", id.String())

	for _, bad := range []string{"", "abc", "0", "-3", "4.2"} {
		_, err := ParseGuardID(bad)
		assert.Error(t, err, bad)
	}
}

func TestAssignmentKey_String(t *testing.T) {
	assert.Equal(t, "7-cp-1", AssignmentKey{GuardID: 7, CheckpointID: "cp-1"}.String())
}

func TestGuard_Assignments(t *testing.T) {
	g := &Guard{AssignedCheckpoints: []CheckpointID{"b", "a", "b", "", "c"}}

	assert.Equal(t, []CheckpointID{"b", "a", "c"}, g.Assignments())
	assert.True(t, g.IsAssigned("a"))
	assert.False(t, g.IsAssigned("z"))
}

func TestCheckpoint_RadiusOr(t *testing.T) {
	zero, neg := 0.0, -1.0
	assert.Equal(t, 30.0, (&Checkpoint{}).RadiusOr(30))
	assert.Equal(t, 0.0, (&Checkpoint{AllowedRadius: &zero}).RadiusOr(30))
	assert.Equal(t, 30.0, (&Checkpoint{AllowedRadius: &neg}).RadiusOr(30))
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "driver", "guard", ""})

	assert.Equal(t, Roles{RoleAdmin, RoleGuard}, roles)
	assert.Equal(t, []string{"admin", "guard"}, roles.ToStrings())
	assert.Empty(t, RolesFromStrings(nil))
}

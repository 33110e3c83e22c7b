package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Rejected"} {
		status, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), status)
	}

	for _, s := range []string{"Bogus", "approved", "PENDING", " Approved", ""} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidStatus, s)
	}
}

func TestInitial(t *testing.T) {
	assert.Equal(t, StatusPending, Initial())
}

func TestTransition_AllPairsLegal(t *testing.T) {
	states := []Status{StatusPending, StatusApproved, StatusRejected}
	for _, from := range states {
		for _, to := range states {
			got, err := Transition(from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got)
			assert.True(t, CanTransition(from, to))
		}
	}
}

func TestTransition_EditBackToPending(t *testing.T) {
	current := Initial()
	for _, next := range []Status{StatusApproved, StatusPending, StatusRejected} {
		var err error
		current, err = Transition(current, next)
		require.NoError(t, err)
	}
	assert.Equal(t, StatusRejected, current)
}

func TestTransition_EmptySourceIsPending(t *testing.T) {
	got, err := Transition("", StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got)
}

func TestTransition_UnknownStoredSourceIsPending(t *testing.T) {
	for _, from := range []Status{"approved", "REJECTED", "Archived"} {
		for _, to := range []Status{StatusPending, StatusApproved, StatusRejected} {
			got, err := Transition(from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got)
		}
	}
}

func TestTransition_UnknownTarget(t *testing.T) {
	_, err := Transition(StatusPending, Status("Archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

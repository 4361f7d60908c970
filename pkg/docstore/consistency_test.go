package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistencyLevel_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Strong", ConsistencyStrong.String())
	assert.Equal(t, "BoundedStaleness", ConsistencyBoundedStaleness.String())
	assert.Equal(t, "Session", ConsistencySession.String())
	assert.Equal(t, "Eventual", ConsistencyEventual.String())
	assert.Equal(t, "ConsistentPrefix", ConsistencyConsistentPrefix.String())
	assert.Equal(t, "Unknown", ConsistencyLevel(123).String())
}

func TestParseConsistencyLevel(t *testing.T) {
	t.Parallel()
	level, err := ParseConsistencyLevel("Session")
	require.NoError(t, err)
	assert.Equal(t, ConsistencySession, level)

	_, err = ParseConsistencyLevel("session")
	require.Error(t, err)
	assert.Equal(t, `unexpected consistency level "session"`, err.Error())
}

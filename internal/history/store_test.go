package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAppendAndGet(t *testing.T) {
	s := NewStore(10, 100)

	s.Append("s1", Turn{Role: RoleUser, Content: "hi"})
	s.Append("s1", Turn{Role: RoleAssistant, Content: "hello"})

	turns := s.Get("s1")
	require.Len(t, turns, 2)
	assert.Equal(t, RoleUser, turns[0].Role)
	assert.Equal(t, "hi", turns[0].Content)
	assert.Equal(t, RoleAssistant, turns[1].Role)
}

func TestStoreUnknownSessionIsEmpty(t *testing.T) {
	s := NewStore(10, 100)
	assert.Empty(t, s.Get("nope"))
}

func TestStoreKeepsTenMostRecentTurns(t *testing.T) {
	s := NewStore(10, 100)

	for i := 0; i < 15; i++ {
		s.Append("s1", Turn{Role: RoleUser, Content: fmt.Sprintf("msg-%d", i)})
	}

	turns := s.Get("s1")
	require.Len(t, turns, 10)
	assert.Equal(t, "msg-5", turns[0].Content)
	assert.Equal(t, "msg-14", turns[9].Content)
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore(10, 100)
	s.Append("s1", Turn{Role: RoleUser, Content: "original"})

	turns := s.Get("s1")
	turns[0].Content = "mutated"

	assert.Equal(t, "original", s.Get("s1")[0].Content)
}

func TestStoreEvictsLeastRecentlyTouchedSession(t *testing.T) {
	s := NewStore(10, 2)

	s.Append("old", Turn{Role: RoleUser, Content: "a"})
	time.Sleep(time.Millisecond)
	s.Append("kept", Turn{Role: RoleUser, Content: "b"})
	time.Sleep(time.Millisecond)
	s.Append("new", Turn{Role: RoleUser, Content: "c"})

	assert.Equal(t, 2, s.Sessions())
	assert.Empty(t, s.Get("old"))
	assert.Len(t, s.Get("kept"), 1)
	assert.Len(t, s.Get("new"), 1)
}

func TestStoreDefaults(t *testing.T) {
	s := NewStore(0, 0)
	assert.Equal(t, DefaultMaxTurns, s.maxTurns)
	assert.Equal(t, DefaultMaxSessions, s.maxSessions)
}

/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue[int]
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}

	for want := 1; want <= 5; want++ {
		got, ok := q.TryPop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := q.TryPop()
	assert.False(t, ok)
}

func TestQueueTryPopEmpty(t *testing.T) {
	var q Queue[string]
	got, ok := q.TryPop()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestQueueDrain(t *testing.T) {
	var q Queue[string]
	q.Push("a")
	q.Push("b")

	assert.Equal(t, []string{"a", "b"}, q.Drain())
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain())
}

func TestQueueConcurrentPush(t *testing.T) {
	var q Queue[int]
	var wg sync.WaitGroup
	const producers, perProducer = 8, 100

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, q.Len())
}

func TestEventsDrainAll(t *testing.T) {
	e := &Events{}
	e.ActivityJoin.Push(ActivityJoin{Secret: "s"})
	e.LobbyMessage.Push(LobbyMessage{LobbyID: 1})
	e.VoiceSettingsUpdate.Push(VoiceSettingsUpdate{})

	assert.Equal(t, 3, e.DrainAll())
	assert.Zero(t, e.ActivityJoin.Len())
	assert.Zero(t, e.LobbyMessage.Len())
	assert.Zero(t, e.DrainAll())
}

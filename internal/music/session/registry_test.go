package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	first, created := r.GetOrCreate("guild-1")
	require.True(t, created)
	assert.Equal(t, StateConnecting, first.State())

	second, created := r.GetOrCreate("guild-1")
	assert.False(t, created)
	assert.Same(t, first, second)
}

func TestRegistryGetNeverCreates(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("guild-1"))
	assert.Nil(t, r.Get("guild-1"))
}

func TestRegistryConcurrentCreateSingleWinner(t *testing.T) {
	r := NewRegistry()

	const workers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, created := r.GetOrCreate("guild-1"); created {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate("guild-1")

	r.Remove("guild-1")
	assert.Nil(t, r.Get("guild-1"))
	r.Remove("guild-1")
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	sess, _ := r.GetOrCreate("guild-1")
	r.GetOrCreate("guild-2")

	sess.attach(lofiTrack(), nil, nil)
	sess.setPlaying()

	infos := r.Snapshot()
	require.Len(t, infos, 2)

	byGuild := make(map[string]Info, len(infos))
	for _, info := range infos {
		byGuild[info.GuildID] = info
	}
	assert.Equal(t, StatePlaying, byGuild["guild-1"].State)
	assert.Equal(t, "Lofi Beats", byGuild["guild-1"].Title)
	assert.Equal(t, StateConnecting, byGuild["guild-2"].State)
	assert.Empty(t, byGuild["guild-2"].Title)
}

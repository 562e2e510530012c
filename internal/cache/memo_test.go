package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemo_RememberLookup_NoTTL(t *testing.T) {
	m := NewMemo[string, string](0)
	m.Remember("a", "1")

	v, present, hit := m.Lookup("a")
	require.True(t, hit)
	require.True(t, present)
	require.Equal(t, "1", v)

	_, _, hit = m.Lookup("b")
	require.False(t, hit)
	require.Equal(t, 1, m.Len())
}

func TestMemo_RemembersMisses(t *testing.T) {
	m := NewMemo[string, string](time.Minute)
	m.RememberMissing("gone")

	v, present, hit := m.Lookup("gone")
	require.True(t, hit)
	require.False(t, present)
	require.Empty(t, v)
}

func TestMemo_TTL_Expiry(t *testing.T) {
	m := NewMemo[string, string](time.Second)

	// Freeze time via now indirection
	base := time.Now()
	now = func() time.Time { return base }
	t.Cleanup(func() { now = time.Now })

	m.Remember("k", "v")
	_, _, hit := m.Lookup("k")
	require.True(t, hit, "expected hit before expiry")

	base = base.Add(2 * time.Second)
	_, _, hit = m.Lookup("k")
	require.False(t, hit, "expected miss after expiry")
	require.Equal(t, 0, m.Len())
	require.Equal(t, 1, m.Sweep())
	require.Equal(t, 0, m.Sweep())
}

func TestMemo_Forget(t *testing.T) {
	m := NewMemo[int, int](0)
	m.Remember(1, 10)
	m.Remember(2, 20)
	m.Forget(1)
	_, _, hit := m.Lookup(1)
	require.False(t, hit)
	require.Equal(t, 1, m.Len())
}

func TestMemo_Concurrent(t *testing.T) {
	keys := 100
	rounds := 200
	m := NewMemo[int, int](0)

	var wg sync.WaitGroup
	for i := 0; i < keys; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				m.Remember(i, r)
				_, _, _ = m.Lookup(i)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < keys; i++ {
		v, present, hit := m.Lookup(i)
		require.True(t, hit)
		require.True(t, present)
		require.Equal(t, rounds-1, v)
	}
}

package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuwen01/gemini/iterable"
)

// StreamEquals checks the stream yields exactly want, in order, and that it
// honours the Iterable contract while doing so.
func StreamEquals[T any](t testing.TB, want []T, s iterable.Iterable[T]) {
	t.Helper()
	require.Equal(t, len(want), s.Len(), "declared length")
	got := iterable.Collect(s)
	if len(want) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, want, got)
	Restartable(t, s)
}

// Consistent checks that a full traversal yields Len items.
func Consistent[T any](t testing.TB, s iterable.Iterable[T]) {
	t.Helper()
	require.NoError(t, iterable.Verify(s))
	require.Equal(t, s.Len() == 0, iterable.IsEmpty(s))
}

// Restartable checks that two traversals, driven in lockstep, see the same
// items and end together.
func Restartable[T any](t testing.TB, s iterable.Iterable[T]) {
	t.Helper()
	a, b := s.Iter(), s.Iter()
	n := 0
	for {
		okA, okB := a.Next(), b.Next()
		require.Equal(t, okA, okB, "traversals ended at different positions (%d)", n)
		if !okA {
			break
		}
		require.Equal(t, a.Value(), b.Value(), "item %d", n)
		n++
	}
	require.Equal(t, s.Len(), n)
}

package statemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dietr1ch/search/arena"
	"github.com/Dietr1ch/search/statemap"
)

func TestMap_VacantThenOpenThenClosed(t *testing.T) {
	m := statemap.New[string](0)

	require.Equal(t, statemap.Vacant, m.Entry("a").Kind)

	m.InsertOpen("a", arena.Ref(7))
	entry := m.Entry("a")
	require.Equal(t, statemap.Open, entry.Kind)
	require.Equal(t, arena.Ref(7), entry.Ref)

	m.MarkClosed("a")
	entry = m.Entry("a")
	require.Equal(t, statemap.Closed, entry.Kind)
	require.Equal(t, arena.Ref(7), entry.Ref)

	require.Equal(t, 1, m.Len())
}

func TestMap_Reopen(t *testing.T) {
	m := statemap.New[string](0)
	m.InsertOpen("a", arena.Ref(1))
	m.MarkClosed("a")

	m.Reopen("a", arena.Ref(2))
	entry := m.Entry("a")
	require.Equal(t, statemap.Open, entry.Kind)
	require.Equal(t, arena.Ref(2), entry.Ref)
}

func TestMap_InsertOpenOnNonVacantPanics(t *testing.T) {
	m := statemap.New[string](0)
	m.InsertOpen("a", arena.Ref(1))
	require.Panics(t, func() { m.InsertOpen("a", arena.Ref(2)) })
}

func TestMap_MarkClosedOnVacantOrClosedPanics(t *testing.T) {
	m := statemap.New[string](0)
	require.Panics(t, func() { m.MarkClosed("a") })

	m.InsertOpen("a", arena.Ref(1))
	m.MarkClosed("a")
	require.Panics(t, func() { m.MarkClosed("a") })
}

func TestMap_ReopenOnNonClosedPanics(t *testing.T) {
	m := statemap.New[string](0)
	require.Panics(t, func() { m.Reopen("a", arena.Ref(1)) })

	m.InsertOpen("a", arena.Ref(1))
	require.Panics(t, func() { m.Reopen("a", arena.Ref(2)) })
}

package tableview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionNoneIgnoresToggles(t *testing.T) {
	s := NewSelection(SelectionNone)

	s.Toggle("a")
	s.SelectPage([]string{"a", "b"})
	require.Zero(t, s.Len())
}

func TestSelectionSingleReplaces(t *testing.T) {
	s := NewSelection(SelectionSingle)

	s.Toggle("a")
	require.True(t, s.Has("a"))

	s.Toggle("b")
	require.Equal(t, []string{"b"}, s.IDs())
	require.Equal(t, 1, s.Len())
}

func TestSelectionSingleToggleOffOwnRow(t *testing.T) {
	s := NewSelection(SelectionSingle)

	s.Toggle("a")
	s.Toggle("a")
	require.Zero(t, s.Len())
}

func TestSelectionMultipleTogglesIndependently(t *testing.T) {
	s := NewSelection(SelectionMultiple)

	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("c")
	s.Toggle("b")
	require.Equal(t, []string{"a", "c"}, s.IDs())
}

func TestSelectionSelectPageOnlyCurrentRows(t *testing.T) {
	s := NewSelection(SelectionMultiple)
	s.Toggle("off-page")

	s.SelectPage([]string{"a", "b"})
	require.Equal(t, []string{"a", "b", "off-page"}, s.IDs())

	s.DeselectPage([]string{"a", "b"})
	require.Equal(t, []string{"off-page"}, s.IDs())
}

func TestSelectionSelectPageNoopOutsideMultiple(t *testing.T) {
	s := NewSelection(SelectionSingle)
	s.SelectPage([]string{"a", "b"})
	require.Zero(t, s.Len())
}

func TestSelectionModeSwitchDoesNotClamp(t *testing.T) {
	s := NewSelection(SelectionMultiple)
	s.Toggle("a")
	s.Toggle("b")

	// Switching to single keeps the oversized set as-is.
	s.SetMode(SelectionSingle)
	require.Equal(t, 2, s.Len())

	// The next selection event enforces the new policy.
	s.Toggle("c")
	require.Equal(t, []string{"c"}, s.IDs())
}

func TestSelectionModeNoneClears(t *testing.T) {
	s := NewSelection(SelectionMultiple)
	s.Toggle("a")

	s.SetMode(SelectionNone)
	require.Zero(t, s.Len())
}

func TestSelectionRemoveIgnoresMode(t *testing.T) {
	s := NewSelection(SelectionNone)
	s.Remove("missing") // no panic

	s.SetMode(SelectionMultiple)
	s.Toggle("a")
	s.Remove("a")
	require.False(t, s.Has("a"))
}

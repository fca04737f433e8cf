package kanban

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapseSet_Toggle(t *testing.T) {
	h := &countingHaptics{}
	s := NewCollapseSet(h)

	require.True(t, s.Toggle("c1"))
	require.True(t, s.IsCollapsed("c1"))
	require.False(t, s.Toggle("c1"))
	require.False(t, s.IsCollapsed("c1"))
	require.Equal(t, 2, h.light)
}

func TestCollapseSet_CollapsedIsSorted(t *testing.T) {
	s := NewCollapseSet(nil)
	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	require.Equal(t, []string{"a", "b", "c"}, s.Collapsed())
}

func TestViewState_MobileForcesScrollableColumns(t *testing.T) {
	v := NewViewState()
	v.SetMode(ModeSwimlanes)
	v.SetLayout(LayoutFixed)

	v.SetViewportWidth(500)
	require.True(t, v.IsMobile())
	require.Equal(t, ModeColumns, v.Mode())
	require.Equal(t, LayoutScrollable, v.Layout())

	// preferences survive going back to desktop width
	v.SetViewportWidth(1024)
	require.False(t, v.IsMobile())
	require.Equal(t, ModeSwimlanes, v.Mode())
	require.Equal(t, LayoutFixed, v.Layout())
}

func TestViewState_BreakpointBoundary(t *testing.T) {
	v := NewViewState()
	v.SetViewportWidth(MobileBreakpoint)
	require.False(t, v.IsMobile())
	v.SetViewportWidth(MobileBreakpoint - 1)
	require.True(t, v.IsMobile())
}

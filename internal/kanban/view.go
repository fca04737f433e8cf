package kanban

import "sync"

// ViewMode selects how the board is rendered.
type ViewMode string

const (
	ModeColumns   ViewMode = "columns"
	ModeSwimlanes ViewMode = "swimlanes"
	ModeCards     ViewMode = "cards"
	ModeCompact   ViewMode = "compact"
)

// ColumnLayout selects how columns use horizontal space.
type ColumnLayout string

const (
	LayoutFixed      ColumnLayout = "fixed"
	LayoutFluid      ColumnLayout = "fluid"
	LayoutScrollable ColumnLayout = "scrollable"
)

// MobileBreakpoint is the viewport width (px) below which the board is
// considered mobile and forced into scrollable columns.
const MobileBreakpoint = 768

// ViewState tracks display mode and column layout. Below the mobile
// breakpoint the layout is forced to scrollable and the mode to columns;
// explicit setters are remembered and restored when the viewport grows
// back past the breakpoint.
type ViewState struct {
	mu            sync.Mutex
	mode          ViewMode
	layout        ColumnLayout
	viewportWidth int
}

// NewViewState starts in columns mode with a fluid layout on a desktop
// sized viewport.
func NewViewState() *ViewState {
	return &ViewState{
		mode:          ModeColumns,
		layout:        LayoutFluid,
		viewportWidth: MobileBreakpoint,
	}
}

// SetViewportWidth records the viewport width in pixels.
func (v *ViewState) SetViewportWidth(px int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewportWidth = px
}

// SetMode stores the preferred display mode.
func (v *ViewState) SetMode(mode ViewMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
}

// SetLayout stores the preferred column layout.
func (v *ViewState) SetLayout(layout ColumnLayout) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout = layout
}

// IsMobile reports whether the viewport is below the mobile breakpoint.
func (v *ViewState) IsMobile() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewportWidth < MobileBreakpoint
}

// Mode returns the effective display mode (mobile forces columns).
func (v *ViewState) Mode() ViewMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.viewportWidth < MobileBreakpoint {
		return ModeColumns
	}
	return v.mode
}

// Layout returns the effective column layout (mobile forces scrollable).
func (v *ViewState) Layout() ColumnLayout {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.viewportWidth < MobileBreakpoint {
		return LayoutScrollable
	}
	return v.layout
}

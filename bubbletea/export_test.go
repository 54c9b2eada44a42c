package bubbletea

// Truncate exports truncate for testing.
func Truncate(s string, width int) string {
	return truncate(s, width)
}

// RenderedRows reports how many rows the last render drew.
func RenderedRows(m Model) int {
	return m.rendered
}

// FadingRows returns the displayed row indices drawn as fading.
func FadingRows(m Model) []int {
	_, fading, _ := m.displayed()
	return fading
}

// WithStyles replaces the styles of m and redraws it.
func WithStyles(m Model, s Styles) Model {
	m.styles = s
	return m.render()
}

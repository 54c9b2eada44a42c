package threadview

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Conversation int // Conversation titles
	Message      int // Message content
	Separator    int // Border under conversation rows
	Cursor       int // Selected row background
	Muted        int // Status bar, counts, fading rows
	Accent       int // Expand/collapse indicator
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Conversation: 7,
		Message:      7,
		Separator:    8,
		Cursor:       4,
		Muted:        8,
		Accent:       5,
	}
}

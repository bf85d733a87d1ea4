package settings

// HasChanged reports whether next differs from prev in any field.
//
// CustomColors and WindowPosition are compared by value. HyperlinkRules and
// WindowDecorations are compared as sets, so reordering or repeating an
// element is not a change.
func HasChanged(next, prev Settings) bool {
	if !samePalette(next, prev) {
		return true
	}
	if !sameSet(next.HyperlinkRules, prev.HyperlinkRules) {
		return true
	}
	if !sameSet(next.WindowDecorations, prev.WindowDecorations) {
		return true
	}
	if !samePosition(next.WindowPosition, prev.WindowPosition) {
		return true
	}

	return scalarsOf(next) != scalarsOf(prev)
}

// scalars is the comparable remainder of Settings.
type scalars struct {
	theme                   string
	colorScheme             string
	font                    string
	fontSize                int
	opacity                 float64
	padding                 int
	lineHeight              float64
	cursorStyle             CursorStyle
	enableTabBar            bool
	fancyTabBar             bool
	enableScrollBar         bool
	leaderKey               string
	windowWidth             int
	windowHeight            int
	windowMaximized         bool
	windowFullscreen        bool
	windowAlwaysOnTop       bool
	windowCloseConfirmation CloseConfirmation
	hideTabBarIfOneTab      bool
}

func scalarsOf(s Settings) scalars {
	return scalars{
		theme:                   string(s.Theme),
		colorScheme:             s.ColorScheme,
		font:                    s.Font,
		fontSize:                s.FontSize,
		opacity:                 s.Opacity,
		padding:                 s.Padding,
		lineHeight:              s.LineHeight,
		cursorStyle:             s.CursorStyle,
		enableTabBar:            s.EnableTabBar,
		fancyTabBar:             s.FancyTabBar,
		enableScrollBar:         s.EnableScrollBar,
		leaderKey:               s.LeaderKey,
		windowWidth:             s.WindowWidth,
		windowHeight:            s.WindowHeight,
		windowMaximized:         s.WindowMaximized,
		windowFullscreen:        s.WindowFullscreen,
		windowAlwaysOnTop:       s.WindowAlwaysOnTop,
		windowCloseConfirmation: s.WindowCloseConfirmation,
		hideTabBarIfOneTab:      s.HideTabBarIfOneTab,
	}
}

func samePalette(a, b Settings) bool {
	if a.CustomColors == nil || b.CustomColors == nil {
		return a.CustomColors == nil && b.CustomColors == nil
	}
	return *a.CustomColors == *b.CustomColors
}

func samePosition(a, b *Position) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameSet[T comparable](a, b []T) bool {
	left := make(map[T]struct{}, len(a))
	for _, v := range a {
		left[v] = struct{}{}
	}
	right := make(map[T]struct{}, len(b))
	for _, v := range b {
		right[v] = struct{}{}
	}
	if len(left) != len(right) {
		return false
	}
	for v := range left {
		if _, ok := right[v]; !ok {
			return false
		}
	}
	return true
}

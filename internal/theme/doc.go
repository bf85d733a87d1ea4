// Package theme resolves the three-color palette used by the generated
// WezTerm configuration and by the terminal previews.
//
// Integration example:
//
//	p := theme.Resolve(theme.Dark, "Dracula", nil)
//	fmt.Println(p.Background, p.Foreground, p.Accent)
//
// Resolve never fails: an unknown scheme name falls back to Builtin Dark.
package theme

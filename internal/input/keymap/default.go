package keymap

// Default returns the stock vim-style key table. The find operators
// (f/F/t/T) and the command-line colon are not in the table; the modal
// controller consumes those before keymap lookup.
func Default() *Keymap {
	k := New()

	// Navigation.
	k.MustBind("j", "scroll-down")
	k.MustBind("k", "scroll-up")
	k.MustBind("h", "scroll-left")
	k.MustBind("l", "scroll-right")
	k.MustBind("Down", "scroll-down")
	k.MustBind("Up", "scroll-up")
	k.MustBind("Left", "scroll-left")
	k.MustBind("Right", "scroll-right")
	k.MustBind("PgDn", "next-page")
	k.MustBind("PgUp", "prev-page")
	k.MustBind("Space", "next-page")
	k.MustBind("g", "first-page")
	k.MustBind("G", "last-page")

	// Zoom.
	k.MustBind("+", "zoom-in")
	k.MustBind("=", "zoom-in")
	k.MustBind("-", "zoom-out")
	k.MustBind("0", "zoom-reset")
	k.MustBind("a", "fit-page")
	k.MustBind("s", "fit-width")

	// Grid layout.
	k.MustBind(">", "rows-more")
	k.MustBind("<", "rows-less")
	k.MustBind("1", "single-row")
	k.MustBind("2", "double-row")

	// Cursor motions.
	k.MustBind("w", "word-next")
	k.MustBind("b", "word-back")
	k.MustBind("e", "word-end")
	k.MustBind("^", "line-start")
	k.MustBind("$", "line-end")
	k.MustBind(";", "repeat-find")
	k.MustBind(",", "repeat-find-back")

	// Search.
	k.MustBind("/", "search-forward")
	k.MustBind("?", "search-backward")
	k.MustBind("n", "search-next")
	k.MustBind("N", "search-prev")

	// TOC.
	k.MustBind("Tab", "toc-toggle")
	k.MustBind("Enter", "toc-select")

	// Selection.
	k.MustBind("v", "visual-toggle")
	k.MustBind("H", "save-highlight")
	k.MustBind("c", "clear-selection")

	// Session.
	k.MustBind("q", "quit")
	k.MustBind("r", "refresh")
	k.MustBind("F11", "fullscreen")

	return k
}

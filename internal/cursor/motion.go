package cursor

// Motions. Every motion returns true when the cursor moved and false
// when no motion was possible; failure is never an error. A page with
// no extractable text blocks text motions, but the arrow motions still
// cross it so the cursor cannot get trapped.

// WordNext moves to the start of the next word: skip the run under the
// cursor, then the whitespace after it. Running off the page end moves
// to the start of the next page.
func (n *Navigator) WordNext() bool {
	text := n.Text()
	if len(text) == 0 {
		return false
	}

	i := int(n.index)
	if cls := Classify(text[i]); cls != ClassSpace {
		for i < len(text) && Classify(text[i]) == cls {
			i++
		}
	}
	for i < len(text) && Classify(text[i]) == ClassSpace {
		i++
	}

	if i >= len(text) {
		if n.page+1 >= n.totalPages {
			return false
		}
		n.page++
		n.index = 0
		return true
	}
	n.index = uint32(i)
	return true
}

// WordBack moves to the start of the previous word. At the page start
// it moves to the end of the previous page.
func (n *Navigator) WordBack() bool {
	text := n.Text()
	if n.index == 0 || len(text) == 0 {
		if n.page == 0 {
			return false
		}
		n.page--
		n.index = pageEnd(n.cache.Get(n.page))
		return true
	}

	i := int(n.index) - 1
	for i > 0 && Classify(text[i]) == ClassSpace {
		i--
	}
	if cls := Classify(text[i]); cls != ClassSpace {
		for i > 0 && Classify(text[i-1]) == cls {
			i--
		}
	}
	n.index = uint32(i)
	return true
}

// WordEnd moves to the last character of the current or next word.
func (n *Navigator) WordEnd() bool {
	text := n.Text()
	if len(text) == 0 {
		return false
	}

	i := int(n.index) + 1
	for i < len(text) && Classify(text[i]) == ClassSpace {
		i++
	}
	if i >= len(text) {
		return false
	}
	cls := Classify(text[i])
	for i+1 < len(text) && Classify(text[i+1]) == cls {
		i++
	}
	n.index = uint32(i)
	return true
}

// Find moves onto the next (or previous) occurrence of ch on the
// current page. A successful find is remembered for RepeatFind.
func (n *Navigator) Find(ch byte, forward bool) bool {
	return n.findChar(ch, forward, false)
}

// Till moves to one position short of the next (or previous)
// occurrence of ch. A successful till is remembered for RepeatFind.
func (n *Navigator) Till(ch byte, forward bool) bool {
	return n.findChar(ch, forward, true)
}

func (n *Navigator) findChar(ch byte, forward, till bool) bool {
	if !n.scanTo(ch, forward, till) {
		return false
	}
	n.lastFind = findState{ch: ch, forward: forward, till: till, valid: true}
	return true
}

// scanTo performs the linear scan without touching the repeat state.
func (n *Navigator) scanTo(ch byte, forward, till bool) bool {
	text := n.Text()
	if len(text) == 0 {
		return false
	}

	if forward {
		for i := int(n.index) + 1; i < len(text); i++ {
			if text[i] == ch {
				if till {
					i--
				}
				n.index = uint32(i)
				return true
			}
		}
		return false
	}

	for i := int(n.index) - 1; i >= 0; i-- {
		if text[i] == ch {
			if till {
				i++
			}
			n.index = uint32(i)
			return true
		}
	}
	return false
}

// RepeatFind replays the last successful find or till in its original
// direction.
func (n *Navigator) RepeatFind() bool {
	if !n.lastFind.valid {
		return false
	}
	return n.scanTo(n.lastFind.ch, n.lastFind.forward, n.lastFind.till)
}

// RepeatFindReverse replays the last successful find or till in the
// opposite direction. The stored direction is left untouched.
func (n *Navigator) RepeatFindReverse() bool {
	if !n.lastFind.valid {
		return false
	}
	return n.scanTo(n.lastFind.ch, !n.lastFind.forward, n.lastFind.till)
}

// LineStart moves to the first character after the preceding newline.
func (n *Navigator) LineStart() bool {
	text := n.Text()
	if len(text) == 0 {
		return false
	}

	i := int(n.index)
	for i > 0 && text[i-1] != '\n' {
		i--
	}
	if uint32(i) == n.index {
		return false
	}
	n.index = uint32(i)
	return true
}

// LineEnd moves to the last character before the following newline,
// backing off one position when the scan lands exactly on the newline.
func (n *Navigator) LineEnd() bool {
	text := n.Text()
	if len(text) == 0 {
		return false
	}

	i := int(n.index)
	for i < len(text) && text[i] != '\n' {
		i++
	}
	if i >= len(text) {
		i = len(text) - 1
	} else if text[i] == '\n' && i > 0 {
		i--
	}
	if uint32(i) == n.index {
		return false
	}
	n.index = uint32(i)
	return true
}

// Left moves one character back, crossing to the previous page's end
// at the page start.
func (n *Navigator) Left() bool {
	if n.index > 0 {
		n.index--
		return true
	}
	if n.page == 0 {
		return false
	}
	n.page--
	n.index = pageEnd(n.cache.Get(n.page))
	return true
}

// Right moves one character forward, crossing to the next page's start
// at the page end.
func (n *Navigator) Right() bool {
	text := n.Text()
	if len(text) > 0 && n.index+1 < uint32(len(text)) {
		n.index++
		return true
	}
	if n.page+1 >= n.totalPages {
		return false
	}
	n.page++
	n.index = 0
	return true
}

// Down moves to the start of the next newline-delimited line, crossing
// to the next page when the cursor is on the page's last line. No
// column is preserved.
func (n *Navigator) Down() bool {
	text := n.Text()

	i := int(n.index)
	for i < len(text) && text[i] != '\n' {
		i++
	}
	if i < len(text) && i+1 < len(text) {
		n.index = uint32(i + 1)
		return true
	}
	if n.page+1 >= n.totalPages {
		return false
	}
	n.page++
	n.index = 0
	return true
}

// Up moves to the start of the previous line, crossing to the previous
// page's end from the page's first line.
func (n *Navigator) Up() bool {
	text := n.Text()

	ls := int(n.index)
	for ls > 0 && text[ls-1] != '\n' {
		ls--
	}
	if ls == 0 {
		if n.page == 0 {
			return false
		}
		n.page--
		n.index = pageEnd(n.cache.Get(n.page))
		return true
	}

	i := ls - 1
	for i > 0 && text[i-1] != '\n' {
		i--
	}
	n.index = uint32(i)
	return true
}

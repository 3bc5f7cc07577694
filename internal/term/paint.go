package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/folio/internal/doc"
	"github.com/dshills/folio/internal/input/mode"
	"github.com/dshills/folio/internal/selection"
	"github.com/dshills/folio/internal/zoom"
)

var (
	styleDefault = tcell.StyleDefault
	stylePage    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelect  = tcell.StyleDefault.Reverse(true)
	styleStatus  = tcell.StyleDefault.Reverse(true)
	styleTocSel  = tcell.StyleDefault.Reverse(true).Bold(true)
)

func (u *UI) paint() {
	u.screen.Clear()
	u.paintPages()
	u.paintSelection()
	u.paintCursor()
	if u.sess.Toc().Visible() {
		u.paintToc()
	}
	u.paintStatus()
	u.screen.Show()
}

// toCell maps document coordinates to a screen cell.
func (u *UI) toCell(x, y float64) (int, int) {
	v := u.sess.View()
	return int((x - v.ScrollLeft()) / cellWidth), int((y - v.ScrollTop()) / cellHeight)
}

func (u *UI) paintPages() {
	g := u.sess.Grid()
	first, last, ok := u.sess.View().VisibleRange(g)
	if !ok {
		return
	}
	for page := first; page <= last; page++ {
		r, _ := g.PageRect(page)
		x1, y1 := u.toCell(r.X1, r.Y1)
		x2, y2 := u.toCell(r.X2, r.Y2)
		u.drawBox(x1, y1, x2, y2, stylePage)

		label := fmt.Sprintf(" %d ", page+1)
		u.drawText(x1+(x2-x1)/2-len(label)/2, y1+(y2-y1)/2, label, stylePage)
	}
}

// paintSelection shades the drag rectangle or the visual-mode
// rectangle, whichever is active.
func (u *UI) paintSelection() {
	sel := u.sess.Selection()

	if sel.DragState() != selection.DragNone {
		u.shadePageRect(sel.DragPage(), sel.DragRect())
		return
	}
	if sel.VisualActive() {
		nav := u.sess.Cursor()
		if r, ok := sel.VisualRect(nav.Page(), nav.Index()); ok {
			u.shadePageRect(nav.Page(), r)
		}
	}
}

// shadePageRect fills a rectangle given in unscaled page coordinates.
func (u *UI) shadePageRect(page uint32, r doc.Rect) {
	pr, ok := u.sess.Grid().PageRect(page)
	if !ok {
		return
	}
	scale := u.sess.Zoom().Scale()
	x1, y1 := u.toCell(pr.X1+r.X1*scale, pr.Y1+r.Y1*scale)
	x2, y2 := u.toCell(pr.X1+r.X2*scale, pr.Y1+r.Y2*scale)
	u.fill(x1, y1, x2, y2, ' ', styleSelect)
}

func (u *UI) paintCursor() {
	nav := u.sess.Cursor()
	if !nav.Visible() {
		u.screen.HideCursor()
		return
	}
	r := nav.ScreenRect()
	x, y := u.toCell(r.X1, r.Y1)
	u.screen.ShowCursor(x, y)
}

// paintToc draws the outline panel over the left edge.
func (u *UI) paintToc() {
	w, h := u.screen.Size()
	panel := w / 2
	if panel > 44 {
		panel = 44
	}
	u.fill(0, 0, panel, h-1, ' ', styleDefault)
	u.drawBox(0, 0, panel, h-2, stylePage)
	u.drawText(2, 0, " Contents ", stylePage)

	nav := u.sess.Toc()
	for i, entry := range nav.Entries() {
		row := 1 + i
		if row >= h-2 {
			break
		}
		style := styleDefault
		if i == nav.Selected() {
			style = styleTocSel
		}
		indent := 2 + int(entry.Level)*2
		line := fmt.Sprintf("%s (%d)", entry.Title, entry.Page+1)
		u.drawTextClipped(indent, row, panel-1, line, style)
	}
}

// paintStatus renders the bottom row: the command line while a prompt
// is open, the session summary otherwise.
func (u *UI) paintStatus() {
	w, h := u.screen.Size()
	if h == 0 {
		return
	}
	row := h - 1
	u.fill(0, row, w, row+1, ' ', styleStatus)

	ctrl := u.sess.Controller()
	if ctrl.Mode() == mode.Command {
		cl := ctrl.CommandLine()
		line := string(cl.Prompt()) + cl.Text()
		u.drawTextClipped(0, row, w, line, styleStatus)
		u.screen.ShowCursor(1+cl.Cursor(), row)
		return
	}

	status := fmt.Sprintf(" %d/%d  %.0f%%", u.sess.CurrentPage()+1, u.sess.PageCount(),
		u.sess.Zoom().Scale()*100)
	if m := u.sess.Zoom().Mode(); m != zoom.FitNone {
		status += "  fit:" + m.String()
	}
	if ctrl.Mode() == mode.FindPending {
		status += "  " + ctrl.Pending().String()
	}
	if u.sess.Selection().VisualActive() {
		status += "  VISUAL"
	}
	u.drawTextClipped(0, row, w, status, styleStatus)
}

func (u *UI) drawBox(x1, y1, x2, y2 int, style tcell.Style) {
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1 + 1; x < x2; x++ {
		u.setCell(x, y1, '─', style)
		u.setCell(x, y2, '─', style)
	}
	for y := y1 + 1; y < y2; y++ {
		u.setCell(x1, y, '│', style)
		u.setCell(x2, y, '│', style)
	}
	u.setCell(x1, y1, '┌', style)
	u.setCell(x2, y1, '┐', style)
	u.setCell(x1, y2, '└', style)
	u.setCell(x2, y2, '┘', style)
}

func (u *UI) fill(x1, y1, x2, y2 int, r rune, style tcell.Style) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			u.setCell(x, y, r, style)
		}
	}
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.setCell(x, y, r, style)
		x++
	}
}

func (u *UI) drawTextClipped(x, y, maxX int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxX {
			return
		}
		u.setCell(x, y, r, style)
		x++
	}
}

func (u *UI) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 {
		return
	}
	u.screen.SetContent(x, y, r, nil, style)
}

// Package term is the terminal front end: a tcell screen that feeds
// key, mouse, scroll, and resize events into the session and paints
// the page grid, status line, and overlays as text.
//
// Terminal cells are mapped to document units at a fixed cell size, so
// the grid scales and scrolls proportionally even though pages render
// as outlines rather than raster images.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/input/key"
	"github.com/dshills/folio/internal/session"
)

// Document units covered by one terminal cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// wheelStep is the scroll distance of one mouse wheel tick.
const wheelStep = cellHeight * 3

// UI owns the tcell screen and the event loop.
type UI struct {
	screen tcell.Screen
	log    zerolog.Logger

	sess     *session.Session
	done     bool
	dragging bool
}

// New allocates the terminal UI. The screen is initialized by Run.
func New(log zerolog.Logger) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocating screen: %w", err)
	}
	return &UI{screen: screen, log: log}, nil
}

// Hooks returns the session hooks this front end serves. Fullscreen is
// meaningless for a terminal and only logged.
func (u *UI) Hooks() session.Hooks {
	return session.Hooks{
		Quit:    func() { u.done = true },
		Refresh: func() { u.screen.Sync() },
		ToggleFullscreen: func() {
			u.log.Debug().Msg("fullscreen ignored on terminal front end")
		},
	}
}

// Run initializes the screen and drives the event loop until a quit.
func (u *UI) Run(sess *session.Session) error {
	u.sess = sess

	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer u.screen.Fini()
	u.screen.EnableMouse()

	w, h := u.screen.Size()
	u.resize(w, h)

	for !u.done {
		u.paint()
		u.handle(u.screen.PollEvent())
		u.sess.Settle()
	}
	return nil
}

// eventFunc carries a closure onto the event loop goroutine, for
// callers like the config watcher that run elsewhere.
type eventFunc struct {
	when time.Time
	fn   func()
}

func (e *eventFunc) When() time.Time { return e.when }

// Post schedules fn to run on the event loop.
func (u *UI) Post(fn func()) {
	_ = u.screen.PostEvent(&eventFunc{when: time.Now(), fn: fn})
}

func (u *UI) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := translateKey(ev); ok {
			u.sess.HandleKey(e)
		}
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		u.resize(w, h)
	case *eventFunc:
		ev.fn()
	case nil:
		// Screen finalized under us.
		u.done = true
	}
}

// resize reserves the bottom row for the status line and hands the
// rest to the session in document units.
func (u *UI) resize(w, h int) {
	if h > 0 {
		h--
	}
	u.sess.Resize(float64(w)*cellWidth, float64(h)*cellHeight)
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	docX := float64(x) * cellWidth
	docY := float64(y) * cellHeight

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		u.sess.Scroll(-wheelStep, 0)
	case buttons&tcell.WheelDown != 0:
		u.sess.Scroll(wheelStep, 0)
	case buttons&tcell.WheelLeft != 0:
		u.sess.Scroll(0, -wheelStep)
	case buttons&tcell.WheelRight != 0:
		u.sess.Scroll(0, wheelStep)
	case buttons&tcell.Button1 != 0:
		if u.dragging {
			u.sess.PointerMove(docX, docY)
		} else {
			u.dragging = true
			u.sess.PointerDown(docX, docY)
		}
	default:
		if u.dragging {
			u.dragging = false
			u.sess.PointerUp()
		}
	}
}

// translateKey converts a tcell key event. Reports false for keys the
// viewer has no representation for.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyF11:
		return key.NewSpecialEvent(key.KeyF11, mods), true
	}

	// tcell folds Ctrl+letter into dedicated key codes.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.NewRuneEvent(r, mods|key.ModCtrl), true
	}
	return key.Event{}, false
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	return mods
}

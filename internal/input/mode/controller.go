package mode

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/input/key"
	"github.com/dshills/folio/internal/input/keymap"
)

// Dispatcher executes named commands; the command registry implements
// it.
type Dispatcher interface {
	Dispatch(name string) bool
	Known(name string) bool
}

// Finder resolves the pending find/till operators; the cursor
// navigator implements it.
type Finder interface {
	Find(ch byte, forward bool) bool
	Till(ch byte, forward bool) bool
}

// Searcher runs the queries collected by the '/' and '?' prompts.
type Searcher interface {
	Search(query string, forward bool) bool
}

// TocState exposes whether the table of contents overlay is showing;
// while it is, navigation keys are redirected to it.
type TocState interface {
	Visible() bool
}

// Controller is the modal input state machine. All key events from the
// front end funnel through HandleKey on the dispatch thread.
type Controller struct {
	keymap     *keymap.Keymap
	dispatcher Dispatcher
	finder     Finder
	searcher   Searcher
	toc        TocState
	log        zerolog.Logger

	mode    Mode
	pending FindOperator
	cmdline CommandLine
}

// NewController creates a controller in Normal mode.
func NewController(km *keymap.Keymap, d Dispatcher, f Finder, s Searcher, toc TocState, log zerolog.Logger) *Controller {
	return &Controller{
		keymap:     km,
		dispatcher: d,
		finder:     f,
		searcher:   s,
		toc:        toc,
		log:        log,
	}
}

// Mode returns the current controller state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Pending returns the active find operator, FindNone outside
// FindPending mode.
func (c *Controller) Pending() FindOperator {
	return c.pending
}

// CommandLine returns the command-line buffer for painting. Only
// meaningful while Mode is Command.
func (c *Controller) CommandLine() *CommandLine {
	return &c.cmdline
}

// Keymap returns the active binding table, for remapping at runtime.
func (c *Controller) Keymap() *keymap.Keymap {
	return c.keymap
}

// BeginCommandPrompt enters Command mode with the ':' prompt.
func (c *Controller) BeginCommandPrompt() {
	c.mode = Command
	c.cmdline.reset(':')
}

// BeginSearchPrompt enters Command mode collecting a search query.
func (c *Controller) BeginSearchPrompt(forward bool) {
	c.mode = Command
	if forward {
		c.cmdline.reset('/')
	} else {
		c.cmdline.reset('?')
	}
}

// HandleKey routes one key event according to the current mode.
func (c *Controller) HandleKey(e key.Event) {
	switch c.mode {
	case Command:
		c.handleCommandKey(e)
	case FindPending:
		c.handleFindKey(e)
	default:
		c.handleNormalKey(e)
	}
}

// findOperators maps the operator keys to their pending variants.
var findOperators = map[rune]FindOperator{
	'f': FindForward,
	'F': FindBackward,
	't': TillForward,
	'T': TillBackward,
}

func (c *Controller) handleNormalKey(e key.Event) {
	// While the TOC overlay is open it owns the keyboard; no prompt
	// or pending-find entry, only the override vocabulary below.
	tocOpen := c.toc != nil && c.toc.Visible()

	if e.IsChar() && !tocOpen {
		if e.Rune == ':' {
			c.BeginCommandPrompt()
			return
		}
		if op, ok := findOperators[e.Rune]; ok {
			c.mode = FindPending
			c.pending = op
			return
		}
	}

	cmd, ok := c.keymap.Resolve(e)
	if !ok {
		return
	}
	if tocOpen {
		cmd, ok = tocOverride(cmd)
		if !ok {
			return
		}
	}
	c.dispatcher.Dispatch(cmd)
}

// tocOverride redirects navigation to the visible TOC and swallows
// everything except the TOC's own commands. Checked before generic
// dispatch.
func tocOverride(cmd string) (string, bool) {
	switch cmd {
	case "scroll-down", "next-page":
		return "toc-next", true
	case "scroll-up", "prev-page":
		return "toc-prev", true
	case "toc-toggle", "toc-select", "toc-next", "toc-prev", "quit":
		return cmd, true
	default:
		return "", false
	}
}

func (c *Controller) handleCommandKey(e key.Event) {
	switch {
	case e.IsEscape():
		c.mode = Normal
		c.cmdline.reset(0)
	case e.IsEnter():
		prompt := c.cmdline.prompt
		text := c.cmdline.Text()
		c.mode = Normal
		c.cmdline.reset(0)
		c.executeLine(prompt, text)
	case e.IsBackspace():
		c.cmdline.backspace()
	case e.Key == key.KeyLeft && e.Modifiers == key.ModNone:
		c.cmdline.left()
	case e.Key == key.KeyRight && e.Modifiers == key.ModNone:
		c.cmdline.right()
	case e.IsChar():
		c.cmdline.insert(e.Rune)
	}
}

// executeLine runs a completed command line. A ':' line is parsed as a
// single whitespace-delimited command name; arguments beyond the first
// token are ignored. Search prompts pass the whole line as the query.
func (c *Controller) executeLine(prompt rune, text string) {
	switch prompt {
	case '/':
		c.runSearch(text, true)
	case '?':
		c.runSearch(text, false)
	default:
		name := firstToken(text)
		if name == "" {
			return
		}
		if !c.dispatcher.Dispatch(name) {
			c.log.Info().Str("command", name).Msg("unrecognized command")
		}
	}
}

func (c *Controller) runSearch(query string, forward bool) {
	if c.searcher == nil || query == "" {
		return
	}
	if !c.searcher.Search(query, forward) {
		c.log.Info().Str("query", query).Msg("pattern not found")
	}
}

func (c *Controller) handleFindKey(e key.Event) {
	if e.IsEscape() {
		c.mode = Normal
		c.pending = FindNone
		return
	}
	if !e.IsChar() || e.Rune > 0x7f {
		// Wait for a usable character; the text model is byte indexed.
		return
	}

	op := c.pending
	c.mode = Normal
	c.pending = FindNone

	ch := byte(e.Rune)
	switch op {
	case FindForward:
		c.finder.Find(ch, true)
	case FindBackward:
		c.finder.Find(ch, false)
	case TillForward:
		c.finder.Till(ch, true)
	case TillBackward:
		c.finder.Till(ch, false)
	}
}

// firstToken returns the first whitespace-delimited token of a line.
func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

package mode

// CommandLine is the editable buffer used while the controller is in
// Command mode. It exists only for the duration of that mode; entering
// the mode resets it and leaving discards it.
type CommandLine struct {
	prompt rune
	text   []rune
	cursor int
}

// Prompt returns the prompt character (':' for commands, '/' or '?'
// for search).
func (c *CommandLine) Prompt() rune {
	return c.prompt
}

// Text returns the buffer contents.
func (c *CommandLine) Text() string {
	return string(c.text)
}

// Cursor returns the insertion offset into the buffer.
func (c *CommandLine) Cursor() int {
	return c.cursor
}

// reset clears the buffer for a new prompt.
func (c *CommandLine) reset(prompt rune) {
	c.prompt = prompt
	c.text = c.text[:0]
	c.cursor = 0
}

// insert adds a character at the cursor.
func (c *CommandLine) insert(r rune) {
	c.text = append(c.text, 0)
	copy(c.text[c.cursor+1:], c.text[c.cursor:])
	c.text[c.cursor] = r
	c.cursor++
}

// backspace removes the character before the cursor.
func (c *CommandLine) backspace() {
	if c.cursor == 0 {
		return
	}
	copy(c.text[c.cursor-1:], c.text[c.cursor:])
	c.text = c.text[:len(c.text)-1]
	c.cursor--
}

// left moves the cursor one position back.
func (c *CommandLine) left() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// right moves the cursor one position forward.
func (c *CommandLine) right() {
	if c.cursor < len(c.text) {
		c.cursor++
	}
}

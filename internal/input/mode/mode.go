// Package mode implements the modal input state machine: Normal mode
// dispatching through the keymap, a command-line mode with its own
// editable buffer, and a find-pending mode waiting for the single
// character argument of an f/F/t/T operator.
package mode

// Mode identifies the controller state.
type Mode uint8

const (
	// Normal routes keys through the keybinding table.
	Normal Mode = iota

	// Command collects a command line or search query in a buffer.
	Command

	// FindPending waits for the character argument of a find operator.
	FindPending
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Command:
		return "command"
	case FindPending:
		return "find-pending"
	default:
		return "unknown"
	}
}

// FindOperator identifies which pending find variant is active.
type FindOperator uint8

const (
	// FindNone means no operator is pending.
	FindNone FindOperator = iota

	// FindForward moves onto the next occurrence.
	FindForward

	// FindBackward moves onto the previous occurrence.
	FindBackward

	// TillForward stops one short of the next occurrence.
	TillForward

	// TillBackward stops one past the previous occurrence.
	TillBackward
)

// String returns a human-readable operator name.
func (o FindOperator) String() string {
	switch o {
	case FindNone:
		return "none"
	case FindForward:
		return "find-forward"
	case FindBackward:
		return "find-backward"
	case TillForward:
		return "till-forward"
	case TillBackward:
		return "till-backward"
	default:
		return "unknown"
	}
}

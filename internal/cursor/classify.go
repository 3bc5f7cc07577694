package cursor

// Class partitions characters for word motions. The model is ASCII
// based: a word is a run of alphanumerics and underscores, everything
// printable in between is punctuation, and whitespace separates.
type Class uint8

const (
	// ClassSpace is whitespace: space, tab, newline, carriage return.
	ClassSpace Class = iota

	// ClassWord is an alphanumeric or underscore.
	ClassWord

	// ClassOther is any remaining character.
	ClassOther
)

// Classify returns the class of a single byte.
func Classify(ch byte) Class {
	switch {
	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		return ClassSpace
	case ch == '_',
		ch >= 'a' && ch <= 'z',
		ch >= 'A' && ch <= 'Z',
		ch >= '0' && ch <= '9':
		return ClassWord
	default:
		return ClassOther
	}
}

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassSpace:
		return "space"
	case ClassWord:
		return "word"
	case ClassOther:
		return "other"
	default:
		return "unknown"
	}
}

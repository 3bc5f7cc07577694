package doc

import "errors"

// Sentinel errors for the backend contract. Callers match with errors.Is;
// backends wrap these with context via fmt.Errorf and %w.
var (
	// ErrNotFound indicates the document path does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidFormat indicates the document exists but cannot be parsed.
	ErrInvalidFormat = errors.New("invalid document format")

	// ErrPageOutOfRange indicates a page index outside [0, PageCount).
	// This is always a logic error in the caller, never user-triggerable
	// while the core's invariants hold.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrRender indicates the backend failed to rasterize a page.
	ErrRender = errors.New("render failed")

	// ErrExtraction indicates text or outline extraction failed.
	ErrExtraction = errors.New("extraction failed")

	// ErrUnsupported indicates the backend does not implement the
	// requested operation.
	ErrUnsupported = errors.New("operation not supported by backend")
)

// Package host defines the narrow ports onto the host editor and ships a
// file-backed session implementation of them for headless use. The registry
// never reaches into an ambient host object; it receives these interfaces at
// construction.
package host

// LayoutPort captures and replays the host editor's window layout. Both
// calls are atomic, all-or-nothing: a failed capture yields no blob, a
// failed replay changes nothing.
type LayoutPort interface {
	// CaptureLayout returns an opaque blob describing the current window layout.
	CaptureLayout() ([]byte, error)

	// ReplayLayout restores a previously captured layout.
	ReplayLayout(blob []byte) error
}

// DocumentPort enumerates and manipulates the host's open documents. Open
// and CloseAll are best-effort and independent per path.
type DocumentPort interface {
	// OpenDocuments returns the ordered paths of currently open documents.
	OpenDocuments() ([]string, error)

	// Open opens the document at path.
	Open(path string) error

	// CloseAll closes every open document whose path satisfies match.
	CloseAll(match func(path string) bool) error
}

// ConfirmPort asks the user a yes/no question. Implementations must be safe
// to call with either answer expected; the registry works correctly for both.
type ConfirmPort interface {
	// Confirm returns true if the user accepts the prompt.
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to ConfirmPort.
type ConfirmFunc func(prompt string) bool

// Confirm calls the wrapped function.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

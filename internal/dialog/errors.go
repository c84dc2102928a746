package dialog

import "errors"

// Sentinel errors for the failure classes a dialog invocation can hit.
// Callers match them with errors.Is; the wrapped message carries the
// underlying OS detail.
var (
	// ErrManagerUninitialized is returned by Get before any
	// Create/GetOrCreate has installed the manager.
	ErrManagerUninitialized = errors.New("dialog manager not initialized")

	// ErrDialogUnsupported is returned when the current platform has
	// no native dialog backend.
	ErrDialogUnsupported = errors.New("native file dialogs not supported on this platform")

	// ErrDialogInstantiation is returned when the OS dialog backend
	// could not be created.
	ErrDialogInstantiation = errors.New("creating dialog")

	// ErrDialogConfiguration is returned when configuring or showing
	// the dialog failed (bad title, vanished starting folder, OS call
	// failure). The remembered defaults are left unchanged.
	ErrDialogConfiguration = errors.New("configuring dialog")

	// ErrDialogResult is returned when the dialog reported acceptance
	// but the chosen path could not be retrieved. The remembered
	// defaults are left unchanged.
	ErrDialogResult = errors.New("retrieving dialog result")
)

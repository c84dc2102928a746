package dialog

// showConfig carries everything one configure+show round trip needs.
// The encoded forms required by the OS are built inside the backend
// per call and never outlive it.
type showConfig struct {
	title      string
	initialDir string
	filters    []FileTypeFilter
	owner      WindowHandle
}

// outcome is the result of one modal show. accepted is false when the
// user dismissed the dialog (Cancel, Esc, window close); that is a
// normal outcome, not an error.
type outcome struct {
	path     string
	accepted bool
}

// backend is the narrow adapter in front of the OS common-dialog
// subsystem. Each call blocks until the user dismisses the dialog.
// Implementations: win32Backend (backend_windows.go); tests inject
// fakes through the unexported session constructors.
type backend interface {
	showOpen(cfg showConfig) (outcome, error)
	showSave(cfg showConfig) (outcome, error)
	showFolder(cfg showConfig) (outcome, error)
}

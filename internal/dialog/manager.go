package dialog

import "sync"

// WindowHandle identifies the native window that owns the dialogs
// (an HWND on Windows). A zero handle means "no owner".
type WindowHandle uintptr

// Manager is the process-wide registry of last-used folders and the
// owning window. It exists at most once; all access goes through an
// exclusive Lease so concurrent dialog sessions cannot race on the
// remembered defaults.
//
// See https://learn.microsoft.com/en-us/windows/win32/shell/common-file-dialog#controlling-the-default-folder
type Manager struct {
	defaultOpen string
	defaultSave string
	window      WindowHandle
}

// Package-level singleton and its guard. The mutex is held for the
// whole lifetime of a Lease, not just the lookup, which serializes
// dialog sessions process-wide.
var (
	managerMu sync.Mutex
	manager   *Manager
)

// Lease is an exclusive borrow of the manager. Exactly one live Lease
// exists at a time; holding it blocks every other Acquire/Get path.
// The holder must call Release when done and must not touch the Lease
// afterwards.
type Lease struct {
	m    *Manager
	once sync.Once
}

// Create installs the manager, unconditionally replacing any previous
// instance. Both the open and save defaults start at defaultPath.
// Application code normally wants GetOrCreate instead.
func Create(defaultPath string, window WindowHandle) {
	managerMu.Lock()
	defer managerMu.Unlock()
	manager = &Manager{defaultOpen: defaultPath, defaultSave: defaultPath, window: window}
}

// Get returns an exclusive lease on the manager, or
// ErrManagerUninitialized if nothing has been installed yet.
func Get() (*Lease, error) {
	managerMu.Lock()
	if manager == nil {
		managerMu.Unlock()
		return nil, ErrManagerUninitialized
	}
	return &Lease{m: manager}, nil
}

// TryGet is Get without the error: ok is false when no manager exists.
func TryGet() (*Lease, bool) {
	managerMu.Lock()
	if manager == nil {
		managerMu.Unlock()
		return nil, false
	}
	return &Lease{m: manager}, true
}

// GetOrCreate returns a lease on the existing manager, installing one
// first if none exists. First writer wins: when two callers race, one
// installs and the other sees the already-installed instance with the
// first caller's defaults and window.
func GetOrCreate(defaultPath string, window WindowHandle) *Lease {
	managerMu.Lock()
	if manager == nil {
		manager = &Manager{defaultOpen: defaultPath, defaultSave: defaultPath, window: window}
	}
	return &Lease{m: manager}
}

// Release ends the borrow. Safe to call more than once.
func (l *Lease) Release() {
	l.once.Do(managerMu.Unlock)
}

// DefaultOpen returns the remembered folder for open dialogs.
func (l *Lease) DefaultOpen() string { return l.m.defaultOpen }

// DefaultSave returns the remembered folder for save dialogs.
func (l *Lease) DefaultSave() string { return l.m.defaultSave }

// SetDefaultOpen updates the remembered folder for open dialogs.
func (l *Lease) SetDefaultOpen(path string) { l.m.defaultOpen = path }

// SetDefaultSave updates the remembered folder for save dialogs.
func (l *Lease) SetDefaultSave(path string) { l.m.defaultSave = path }

// Window returns the owning window the manager was installed with.
func (l *Lease) Window() WindowHandle { return l.m.window }

// ResetForTesting discards the singleton. Not safe while a lease is
// held; tests only.
func ResetForTesting() {
	managerMu.Lock()
	manager = nil
	managerMu.Unlock()
}

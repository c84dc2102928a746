package dialog

import (
	"fmt"
	"path/filepath"
)

// FileDialog is the capability shared by open and save sessions. Both
// variants read and write the manager through the lease they were
// created against.
type FileDialog interface {
	// DefaultTitle is the title used when the caller supplies none.
	DefaultTitle() string
	// ResolveTitle returns title, or DefaultTitle when title is empty.
	ResolveTitle(title string) string
	// DefaultPath is the remembered starting folder for this dialog kind.
	DefaultPath() string
	// SetDefaultPath updates the remembered folder for this dialog kind.
	SetDefaultPath(path string)
	// Window is the owner window dialogs are parented to.
	Window() WindowHandle
}

// runDialog drives one configure+show round trip and applies the
// remembered-default update on acceptance. File picks remember the
// chosen path's parent directory so the next dialog opens alongside
// it; folder picks remember the chosen folder itself.
func runDialog(d FileDialog, show func(showConfig) (outcome, error), filters []FileTypeFilter, title string, rememberParent bool) (string, bool, error) {
	cfg := showConfig{
		title:      d.ResolveTitle(title),
		initialDir: d.DefaultPath(),
		filters:    filters,
		owner:      d.Window(),
	}

	out, err := show(cfg)
	if err != nil {
		// Already wrapped by the backend as ErrDialogConfiguration
		// or ErrDialogResult; defaults stay untouched.
		return "", false, err
	}
	if !out.accepted {
		return "", false, nil
	}

	remembered := out.path
	if rememberParent {
		remembered = filepath.Dir(out.path)
	}
	d.SetDefaultPath(remembered)
	return out.path, true, nil
}

// OpenDialog is a short-lived session wrapping one native open-file
// picker, bound to an exclusive manager lease for its lifetime.
type OpenDialog struct {
	lease *Lease
	be    backend
}

// NewOpenDialog creates an open session against the leased manager.
// It fails when the platform cannot provide a dialog backend.
func NewOpenDialog(lease *Lease) (*OpenDialog, error) {
	be, err := newBackend()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDialogInstantiation, err)
	}
	return &OpenDialog{lease: lease, be: be}, nil
}

// newOpenDialogWith injects a backend; tests only.
func newOpenDialogWith(lease *Lease, be backend) *OpenDialog {
	return &OpenDialog{lease: lease, be: be}
}

func (d *OpenDialog) DefaultTitle() string { return "Open a file" }

func (d *OpenDialog) ResolveTitle(title string) string {
	if title != "" {
		return title
	}
	return d.DefaultTitle()
}

func (d *OpenDialog) DefaultPath() string        { return d.lease.DefaultOpen() }
func (d *OpenDialog) SetDefaultPath(path string) { d.lease.SetDefaultOpen(path) }
func (d *OpenDialog) Window() WindowHandle       { return d.lease.Window() }

// Open shows the picker modally and returns the chosen path. accepted
// is false when the user cancelled; that is not an error. A nil or
// empty filters slice means no restriction. On acceptance the
// remembered open folder becomes the chosen file's directory.
func (d *OpenDialog) Open(filters []FileTypeFilter, title string) (path string, accepted bool, err error) {
	return runDialog(d, d.be.showOpen, filters, title, true)
}

// OpenFolder shows a folder-only picker. Folders carry no type
// filters. On acceptance the remembered open folder becomes the
// chosen folder.
func (d *OpenDialog) OpenFolder(title string) (path string, accepted bool, err error) {
	return runDialog(d, d.be.showFolder, nil, title, false)
}

// SaveDialog is a short-lived session wrapping one native save-file
// picker, bound to an exclusive manager lease for its lifetime.
type SaveDialog struct {
	lease *Lease
	be    backend
}

// NewSaveDialog creates a save session against the leased manager.
// It fails when the platform cannot provide a dialog backend.
func NewSaveDialog(lease *Lease) (*SaveDialog, error) {
	be, err := newBackend()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDialogInstantiation, err)
	}
	return &SaveDialog{lease: lease, be: be}, nil
}

// newSaveDialogWith injects a backend; tests only.
func newSaveDialogWith(lease *Lease, be backend) *SaveDialog {
	return &SaveDialog{lease: lease, be: be}
}

func (d *SaveDialog) DefaultTitle() string { return "Save a file" }

func (d *SaveDialog) ResolveTitle(title string) string {
	if title != "" {
		return title
	}
	return d.DefaultTitle()
}

func (d *SaveDialog) DefaultPath() string        { return d.lease.DefaultSave() }
func (d *SaveDialog) SetDefaultPath(path string) { d.lease.SetDefaultSave(path) }
func (d *SaveDialog) Window() WindowHandle       { return d.lease.Window() }

// Save shows the picker modally and returns the chosen path. accepted
// is false when the user cancelled. On acceptance the remembered save
// folder becomes the chosen file's directory.
func (d *SaveDialog) Save(filters []FileTypeFilter, title string) (path string, accepted bool, err error) {
	return runDialog(d, d.be.showSave, filters, title, true)
}

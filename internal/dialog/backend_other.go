//go:build !windows

package dialog

// The common-dialog binding is Windows-only. Other platforms compile
// but report dialogs as unsupported at session creation.
func newBackend() (backend, error) {
	return nil, ErrDialogUnsupported
}

// ForegroundWindow has no meaning without a native window system
// binding; callers get a zero (ownerless) handle.
func ForegroundWindow() WindowHandle {
	return 0
}

//go:build windows

package dialog

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	ofnExplorer        = 0x00080000
	ofnPathMustExist   = 0x00000800
	ofnFileMustExist   = 0x00001000
	ofnOverwritePrompt = 0x00000002
	ofnNoChangeDir     = 0x00000008

	bifReturnOnlyFSDirs = 0x00000001
	bifNewDialogStyle   = 0x00000040

	bffmInitialized   = 1
	bffmSetSelectionW = 0x0400 + 103 // WM_USER + 103

	invalidFileAttrs = ^uint32(0)
)

// openFileName is OPENFILENAMEW.
// https://learn.microsoft.com/en-us/windows/win32/api/commdlg/ns-commdlg-openfilenamew
type openFileName struct {
	lStructSize       uint32
	hwndOwner         uintptr
	hInstance         uintptr
	lpstrFilter       *uint16
	lpstrCustomFilter *uint16
	nMaxCustFilter    uint32
	nFilterIndex      uint32
	lpstrFile         *uint16
	nMaxFile          uint32
	lpstrFileTitle    *uint16
	nMaxFileTitle     uint32
	lpstrInitialDir   *uint16
	lpstrTitle        *uint16
	flags             uint32
	nFileOffset       uint16
	nFileExtension    uint16
	lpstrDefExt       *uint16
	lCustData         uintptr
	lpfnHook          uintptr
	lpTemplateName    *uint16
	pvReserved        uintptr
	dwReserved        uint32
	flagsEx           uint32
}

// browseInfo is BROWSEINFOW.
type browseInfo struct {
	owner       uintptr
	root        uintptr
	displayName *uint16
	title       *uint16
	flags       uint32
	callback    uintptr
	lParam      uintptr
	image       int32
}

var (
	comdlg32 = windows.NewLazySystemDLL("comdlg32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	ole32    = windows.NewLazySystemDLL("ole32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procGetOpenFileNameW     = comdlg32.NewProc("GetOpenFileNameW")
	procGetSaveFileNameW     = comdlg32.NewProc("GetSaveFileNameW")
	procCommDlgExtendedError = comdlg32.NewProc("CommDlgExtendedError")
	procSHBrowseForFolderW   = shell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDListW = shell32.NewProc("SHGetPathFromIDListW")
	procCoTaskMemFree        = ole32.NewProc("CoTaskMemFree")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procSendMessageW         = user32.NewProc("SendMessageW")
)

// browseCallback selects the configured starting folder once the
// folder dialog has initialized. data is a *uint16 to the UTF-16 path,
// smuggled through BROWSEINFOW.lParam.
var browseCallback = syscall.NewCallback(func(hwnd, msg, lparam, data uintptr) uintptr {
	if msg == bffmInitialized && data != 0 {
		procSendMessageW.Call(hwnd, bffmSetSelectionW, 1, data)
	}
	return 0
})

// win32Backend drives the comdlg32/shell32 common dialogs.
type win32Backend struct{}

func newBackend() (backend, error) {
	if err := procGetOpenFileNameW.Find(); err != nil {
		return nil, err
	}
	return &win32Backend{}, nil
}

func (b *win32Backend) showOpen(cfg showConfig) (outcome, error) {
	return b.fileDialog(cfg, false)
}

func (b *win32Backend) showSave(cfg showConfig) (outcome, error) {
	return b.fileDialog(cfg, true)
}

func (b *win32Backend) fileDialog(cfg showConfig, save bool) (outcome, error) {
	filter, err := filterMultiString(cfg.filters)
	if err != nil {
		return outcome{}, fmt.Errorf("%w: encoding filters: %v", ErrDialogConfiguration, err)
	}
	title, err := encodeWide(cfg.title)
	if err != nil {
		return outcome{}, fmt.Errorf("%w: encoding title: %v", ErrDialogConfiguration, err)
	}
	initDir, err := resolveInitialDir(cfg.initialDir)
	if err != nil {
		return outcome{}, err
	}

	buf := make([]uint16, 32768)
	ofn := openFileName{
		lStructSize:     uint32(unsafe.Sizeof(openFileName{})),
		hwndOwner:       uintptr(cfg.owner),
		lpstrFile:       &buf[0],
		nMaxFile:        uint32(len(buf)),
		lpstrInitialDir: initDir,
		lpstrTitle:      &title[0],
		flags:           ofnExplorer | ofnPathMustExist | ofnNoChangeDir,
	}
	if filter != nil {
		ofn.lpstrFilter = &filter[0]
	}
	proc := procGetOpenFileNameW
	if save {
		proc = procGetSaveFileNameW
		ofn.flags |= ofnOverwritePrompt
	} else {
		ofn.flags |= ofnFileMustExist
	}

	// Blocks until the user dismisses the dialog.
	r1, _, _ := proc.Call(uintptr(unsafe.Pointer(&ofn)))
	if r1 == 0 {
		code, _, _ := procCommDlgExtendedError.Call()
		if code == 0 {
			return outcome{}, nil
		}
		return outcome{}, fmt.Errorf("%w: common dialog error 0x%04x", ErrDialogConfiguration, code)
	}

	path := windows.UTF16ToString(buf)
	if path == "" {
		return outcome{}, fmt.Errorf("%w: dialog confirmed but returned no path", ErrDialogResult)
	}
	return outcome{path: path, accepted: true}, nil
}

func (b *win32Backend) showFolder(cfg showConfig) (outcome, error) {
	title, err := encodeWide(cfg.title)
	if err != nil {
		return outcome{}, fmt.Errorf("%w: encoding title: %v", ErrDialogConfiguration, err)
	}

	var initSel *uint16
	if cfg.initialDir != "" {
		ptr, err := resolveInitialDir(cfg.initialDir)
		if err != nil {
			return outcome{}, err
		}
		initSel = ptr
	}

	bi := browseInfo{
		owner: uintptr(cfg.owner),
		title: &title[0],
		flags: bifReturnOnlyFSDirs | bifNewDialogStyle,
	}
	if initSel != nil {
		bi.callback = browseCallback
		bi.lParam = uintptr(unsafe.Pointer(initSel))
	}

	pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
	// lParam holds initSel as a bare uintptr, invisible to the GC.
	runtime.KeepAlive(initSel)
	if pidl == 0 {
		return outcome{}, nil
	}
	defer procCoTaskMemFree.Call(pidl)

	buf := make([]uint16, windows.MAX_PATH)
	ok, _, _ := procSHGetPathFromIDListW.Call(pidl, uintptr(unsafe.Pointer(&buf[0])))
	if ok == 0 {
		return outcome{}, fmt.Errorf("%w: selection is not a file-system folder", ErrDialogResult)
	}
	return outcome{path: windows.UTF16ToString(buf), accepted: true}, nil
}

// resolveInitialDir validates and encodes the remembered starting
// folder. An empty value means "let the OS pick". A remembered folder
// that no longer exists is a configuration failure, not a silent
// fallback; the caller decides how to recover.
func resolveInitialDir(dir string) (*uint16, error) {
	if dir == "" {
		return nil, nil
	}
	ptr, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding folder %q: %v", ErrDialogConfiguration, dir, err)
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil || attrs == invalidFileAttrs {
		return nil, fmt.Errorf("%w: starting folder %q does not exist", ErrDialogConfiguration, dir)
	}
	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0 {
		return nil, fmt.Errorf("%w: starting folder %q is not a directory", ErrDialogConfiguration, dir)
	}
	return ptr, nil
}

// ForegroundWindow returns the currently focused window, for use as
// the dialog owner when the application has no window of its own.
func ForegroundWindow() WindowHandle {
	r, _, _ := procGetForegroundWindow.Call()
	return WindowHandle(r)
}

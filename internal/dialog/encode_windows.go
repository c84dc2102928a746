//go:build windows

package dialog

import "golang.org/x/sys/windows"

// encodeWide converts s to a NUL-terminated UTF-16 sequence. Fails on
// interior NUL bytes, which the OS would treat as a terminator.
func encodeWide(s string) ([]uint16, error) {
	return windows.UTF16FromString(s)
}

// filterMultiString renders filters as the comdlg32 filter block:
// description NUL pattern NUL ... NUL NUL. Returns nil for an empty
// list, which the dialog treats as "no restriction". The buffer is
// only valid for the dialog call it was built for.
func filterMultiString(filters []FileTypeFilter) ([]uint16, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	var block []uint16
	for _, f := range filters {
		desc, err := encodeWide(f.Description())
		if err != nil {
			return nil, err
		}
		pat, err := encodeWide(f.Pattern())
		if err != nil {
			return nil, err
		}
		block = append(block, desc...)
		block = append(block, pat...)
	}
	block = append(block, 0)
	return block, nil
}

//go:build windows

package dialog

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestEncodeWide(t *testing.T) {
	got, err := encodeWide("Open a file")
	if err != nil {
		t.Fatalf("encodeWide error = %v", err)
	}
	if got[len(got)-1] != 0 {
		t.Error("encoded text is not NUL-terminated")
	}
	if windows.UTF16ToString(got) != "Open a file" {
		t.Errorf("round trip = %q", windows.UTF16ToString(got))
	}

	if _, err := encodeWide("bad\x00nul"); err == nil {
		t.Error("interior NUL accepted")
	}
}

func TestFilterMultiString(t *testing.T) {
	if p, err := filterMultiString(nil); err != nil || p != nil {
		t.Fatalf("empty filter list = (%v, %v), want (nil, nil)", p, err)
	}

	filters := []FileTypeFilter{
		NewFileTypeFilter("png", "Images"),
		NewFileTypeFilter("txt", "Text files"),
	}
	block, err := filterMultiString(filters)
	if err != nil {
		t.Fatalf("filterMultiString error = %v", err)
	}
	if block[len(block)-1] != 0 || block[len(block)-2] != 0 {
		t.Error("filter block is not double-NUL terminated")
	}

	// Walk the NUL-separated block: desc, pattern, desc, pattern, empty.
	var parts []string
	start := 0
	for i := 0; i < len(block); i++ {
		if block[i] != 0 {
			continue
		}
		if i == start {
			break
		}
		parts = append(parts, windows.UTF16ToString(block[start:i]))
		start = i + 1
	}

	want := []string{"Images", "*.png", "Text files", "*.txt"}
	if len(parts) != len(want) {
		t.Fatalf("parts = %q, want %q", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("parts[%d] = %q, want %q", i, parts[i], want[i])
		}
	}
}

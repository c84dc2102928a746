package dialog

import "testing"

func TestFileTypeFilter(t *testing.T) {
	tests := []struct {
		extension   string
		description string
		wantPattern string
	}{
		{"png", "Images", "*.png"},
		{"jpg", "JPEG images", "*.jpg"},
		{"tar.gz", "Tarballs", "*.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			f := NewFileTypeFilter(tt.extension, tt.description)
			if got := f.Extension(); got != tt.extension {
				t.Errorf("Extension = %q, want %q", got, tt.extension)
			}
			if got := f.Description(); got != tt.description {
				t.Errorf("Description = %q, want %q", got, tt.description)
			}
			if got := f.Pattern(); got != tt.wantPattern {
				t.Errorf("Pattern = %q, want %q", got, tt.wantPattern)
			}
		})
	}
}

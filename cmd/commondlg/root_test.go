package main

import (
	"testing"

	"commondlg/internal/dialog"
)

func TestParseFilterSpecs(t *testing.T) {
	tests := []struct {
		name    string
		specs   []string
		want    []dialog.FileTypeFilter
		wantErr bool
	}{
		{
			name: "extension and description",
			specs: []string{"png:Images"},
			want:  []dialog.FileTypeFilter{dialog.NewFileTypeFilter("png", "Images")},
		},
		{
			name:  "leading dot stripped",
			specs: []string{".png:Images"},
			want:  []dialog.FileTypeFilter{dialog.NewFileTypeFilter("png", "Images")},
		},
		{
			name:  "wildcard prefix stripped",
			specs: []string{"*.png:Images"},
			want:  []dialog.FileTypeFilter{dialog.NewFileTypeFilter("png", "Images")},
		},
		{
			name:  "missing description gets a default",
			specs: []string{"csv"},
			want:  []dialog.FileTypeFilter{dialog.NewFileTypeFilter("csv", "CSV files")},
		},
		{
			name:  "multiple specs",
			specs: []string{"png:Images", "jpg:JPEG images"},
			want: []dialog.FileTypeFilter{
				dialog.NewFileTypeFilter("png", "Images"),
				dialog.NewFileTypeFilter("jpg", "JPEG images"),
			},
		},
		{
			name:  "no specs means no filters",
			specs: nil,
			want:  nil,
		},
		{
			name:    "empty extension",
			specs:   []string{":Images"},
			wantErr: true,
		},
		{
			name:    "blank spec",
			specs:   []string{""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFilterSpecs(tt.specs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFilterSpecs(%q) error = %v, wantErr %v", tt.specs, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d filters, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("filter[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCommandWiring(t *testing.T) {
	for _, name := range []string{"open", "save", "folder"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not wired: %v", name, err)
		}
	}

	for _, flag := range []string{"dir", "save-dir", "title", "filter", "repeat", "watch", "verbose", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered", flag)
		}
	}
}

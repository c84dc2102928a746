package dialog

// FileTypeFilter pairs a file extension with a human-readable label,
// restricting which files a picker shows. The extension is given
// without a leading dot or wildcard ("png", not ".png" or "*.png");
// the backend adds the wildcard when rendering the pattern. No
// validation is performed.
type FileTypeFilter struct {
	extension   string
	description string
}

// NewFileTypeFilter creates a filter for the given extension and label.
func NewFileTypeFilter(extension, description string) FileTypeFilter {
	return FileTypeFilter{extension: extension, description: description}
}

// Extension returns the bare extension the filter was created with.
func (f FileTypeFilter) Extension() string { return f.extension }

// Description returns the human-readable label.
func (f FileTypeFilter) Description() string { return f.description }

// Pattern returns the wildcard form the OS dialog expects, e.g. "*.png".
func (f FileTypeFilter) Pattern() string { return "*." + f.extension }

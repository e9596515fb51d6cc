package ports

// FileSystem abstracts the file system operations needed to discover and
// read image sequences.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// IsDir reports whether the path names an existing directory.
	IsDir(path string) bool

	// ListDir returns the names of the immediate children of a directory,
	// files and subdirectories alike, in no particular order.
	ListDir(path string) ([]string, error)
}

package ports

// FileSystem abstracts the file system operations the CLI needs around an
// encoding run.
type FileSystem interface {
	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists reports whether a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}

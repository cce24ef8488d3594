package asset

// Manager handles the physical files owned by documents. The document
// core never touches the disk directly.
type Manager interface {
	// Copy duplicates the file at path into a fresh owned folder and
	// returns the new path.
	Copy(path string) (string, error)
	// Delete removes a single file.
	Delete(path string) error
	// DeleteFolder removes an owned folder and anything left in it.
	DeleteFolder(path string) error
}

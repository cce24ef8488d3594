package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var _ Manager = (*Local)(nil)

// Local keeps every owned file in its own folder under Root, so removing
// a document's folder can never take an unrelated file with it.
type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{
		root: root,
	}
}

func (l *Local) Copy(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	target, err := l.newOwnedPath(filepath.Base(path))
	if err != nil {
		return "", err
	}

	dst, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	logrus.Infof("copied asset %s to %s", path, target)

	return target, nil
}

func (l *Local) Delete(path string) error {
	return os.Remove(path)
}

func (l *Local) DeleteFolder(path string) error {
	if filepath.Clean(path) == filepath.Clean(l.root) {
		return fmt.Errorf("refusing to delete storage root %s", l.root)
	}

	return os.RemoveAll(path)
}

// Write stores raw content as a new owned file.
func (l *Local) Write(name string, data []byte) (string, error) {
	target, err := l.newOwnedPath(name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}

	return target, nil
}

func (l *Local) newOwnedPath(name string) (string, error) {
	folder := filepath.Join(l.root, uuid.New().String())
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	return filepath.Join(folder, name), nil
}

// Package intake manages the working set of candidate resume files staged for
// a batch submission.
package intake

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hirepilot/hirepilot/internal/common"
)

// ErrUnsupportedMediaType is returned at the selection boundary for files that
// are neither PDF nor DOCX.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// File is one staged resume: its name (the natural key within a session), the
// declared media type, and the raw content.
type File struct {
	Name      string
	MediaType string
	Data      []byte
}

// MediaTypeForName maps a filename to one of the accepted media types.
func MediaTypeForName(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return common.MediaTypePDF, nil
	case ".docx":
		return common.MediaTypeDocx, nil
	default:
		return "", fmt.Errorf("%w: %s (only PDF and DOCX resumes are accepted)", ErrUnsupportedMediaType, name)
	}
}

// FromPath reads a resume from disk. This is the selection boundary: the
// media-type restriction is enforced here, before the file can reach a
// Manager, so Add never sees an unsupported type.
func FromPath(path string) (File, error) {
	mediaType, err := MediaTypeForName(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read resume: %w", err)
	}
	return File{Name: filepath.Base(path), MediaType: mediaType, Data: data}, nil
}

// Manager accumulates the working set in insertion order.
//
// Duplicate filenames are permitted: re-adding a file with an existing name
// produces a second entry, and Remove drops only the first match. This keeps
// the workflow's observable removal contract ("first match, order of the rest
// unchanged") meaningful.
type Manager struct {
	mu    sync.Mutex
	files []File
}

func NewManager() *Manager {
	return &Manager{}
}

// Add appends a batch of newly selected files to the working set.
func (m *Manager) Add(files ...File) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = append(m.files, files...)
}

// Remove deletes the first entry with exactly the given filename and reports
// whether anything was removed. Removing a name that is not present is a
// no-op.
func (m *Manager) Remove(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.files {
		if f.Name == name {
			m.files = append(m.files[:i], m.files[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the working set in insertion order, oldest first.
func (m *Manager) List() []File {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]File, len(m.files))
	copy(out, m.files)
	return out
}

// Len returns the number of staged files.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

// Clear empties the working set.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = nil
}

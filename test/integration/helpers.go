package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/studyplan/internal/config"
	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/hash"
	"github.com/danieljhkim/studyplan/internal/persist"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files  map[string][]byte
	dirs   map[string]bool
	writes int
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for dir := path; dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		fs.dirs[dir] = true
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	delete(fs.files, path)
	delete(fs.dirs, path)
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = append([]byte(nil), data...)
	fs.writes++
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) ValidatePlanPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("invalid plan path: empty")
	}
	return nil
}

const testPlanFile = "/test/studieplan.json"

func setupTestEngine(t *testing.T) (*engine.Engine, *testFS) {
	t.Helper()

	fs := newTestFS()
	paths := config.Paths{
		Root:     "/test",
		PlanFile: testPlanFile,
	}

	eng := engine.New(persist.NewFilePlanRepo(fs), hash.NewSHA256Hasher(), paths)
	return eng, fs
}

// Package workspace keeps a set of documents together with their parse
// outcome, whether they come from disk or from an editor.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/jcomb/jsonc"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jcomb.workspace")

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*File
}

type File struct {
	Path     string
	Content  []byte
	Value    jsonc.Value
	ParseErr error
}

// OK reports whether the file parsed.
func (f *File) OK() bool {
	return f.ParseErr == nil
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*File),
	}
}

func (w *Workspace) RootDir() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rootDir
}

// SetRootDir changes the directory ScanAll walks. Files already tracked are
// kept.
func (w *Workspace) SetRootDir(rootDir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rootDir = rootDir
}

// IsDocument reports whether path names a file the workspace tracks.
func IsDocument(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		return true
	}
	return false
}

// ScanAll parses every document below the root directory, skipping hidden
// directories.
func (w *Workspace) ScanAll() error {
	rootDir := w.RootDir()
	return filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsDocument(path) {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("read %s: %s", path, err)
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile replaces the content of path and parses it again.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	value, err := jsonc.DecodeString(string(content), jsonc.WithFile(path))
	if err != nil {
		log.Debugf("parse %s: %s", path, err)
	}
	f := &File{
		Path:     path,
		Content:  content,
		Value:    value,
		ParseErr: err,
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns all tracked files ordered by path.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	files := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// Failed returns the files that did not parse, ordered by path.
func (w *Workspace) Failed() []*File {
	var failed []*File
	for _, f := range w.Files() {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

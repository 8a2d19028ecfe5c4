package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/jcomb/jsonc"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.jsonc"), "// ok\n{\"a\": 1}\n")
	writeFile(t, filepath.Join(dir, "sub", "bad.json"), "[1,2,]")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a document")
	writeFile(t, filepath.Join(dir, ".hidden", "skip.json"), "{}")

	ws := New(dir)
	require.NoError(t, ws.ScanAll())

	files := ws.Files()
	require.Len(t, files, 2)
	require.Equal(t, filepath.Join(dir, "good.jsonc"), files[0].Path)
	require.True(t, files[0].OK())
	require.Equal(t, jsonc.Object{{Key: "a", Value: jsonc.Number(1)}}, files[0].Value)

	failed := ws.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, filepath.Join(dir, "sub", "bad.json"), failed[0].Path)

	var perr *jsonc.ParseError
	require.ErrorAs(t, failed[0].ParseErr, &perr)
	require.Equal(t, filepath.Join(dir, "sub", "bad.json"), perr.File)
}

func TestUpdateAndRemove(t *testing.T) {
	ws := New(t.TempDir())

	f := ws.UpdateFile("mem.jsonc", []byte("true"))
	require.True(t, f.OK())
	require.Equal(t, jsonc.Boolean(true), ws.GetFile("mem.jsonc").Value)

	f = ws.UpdateFile("mem.jsonc", []byte("tru"))
	require.False(t, f.OK())
	require.Nil(t, f.Value)
	require.Len(t, ws.Failed(), 1)

	ws.RemoveFile("mem.jsonc")
	require.Nil(t, ws.GetFile("mem.jsonc"))
	require.Empty(t, ws.Files())
}

func TestSetRootDir(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(second, "b.json"), "[]")

	ws := New(first)
	ws.UpdateFile("open.jsonc", []byte("null"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		ws.SetRootDir(second)
	}()
	_ = ws.RootDir()
	<-done

	require.Equal(t, second, ws.RootDir())
	require.NoError(t, ws.ScanAll())
	require.NotNil(t, ws.GetFile("open.jsonc"))
	require.NotNil(t, ws.GetFile(filepath.Join(second, "b.json")))
}

func TestScanFileMissing(t *testing.T) {
	ws := New(t.TempDir())
	require.Error(t, ws.ScanFile(filepath.Join(ws.RootDir(), "missing.json")))
}

func TestWatcherScan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	writeFile(t, path, "1")

	ws := New(dir)
	var changed []string
	var removed []string
	w := NewWatcher(ws,
		WithInterval(time.Hour),
		OnChange(func(f *File) { changed = append(changed, f.Path) }),
		OnRemove(func(path string) { removed = append(removed, path) }),
	)

	w.Scan()
	require.Equal(t, []string{path}, changed)
	require.Equal(t, jsonc.Number(1), ws.GetFile(path).Value)

	// Unchanged files are not parsed again.
	w.Scan()
	require.Len(t, changed, 1)

	writeFile(t, path, "2")
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	w.Scan()
	require.Len(t, changed, 2)
	require.Equal(t, jsonc.Number(2), ws.GetFile(path).Value)

	require.NoError(t, os.Remove(path))
	w.Scan()
	require.Equal(t, []string{path}, removed)
	require.Nil(t, ws.GetFile(path))
}

func TestWatcherStartStop(t *testing.T) {
	ws := New(t.TempDir())
	w := NewWatcher(ws, WithInterval(10*time.Millisecond))
	w.Start()
	w.Stop()
	w.Stop()
}

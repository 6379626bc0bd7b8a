package ops

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "data")
	writeFile(t, filepath.Join(src, "save-default.json"), `{"version":1}`)
	writeFile(t, filepath.Join(src, "save-alt.json"), `{"version":1,"gameSpeed":2}`)
	writeFile(t, filepath.Join(src, "save-default.json.tmp"), `{"ver`)
	writeFile(t, filepath.Join(src, "saves.db-wal"), "wal")

	archive := filepath.Join(t.TempDir(), "backups", "saves.tar.gz")
	m, err := Backup(src, archive)
	require.NoError(t, err)
	require.Len(t, m.Files, 2)
	for _, f := range m.Files {
		assert.NotEqual(t, "save-default.json.tmp", f.Path)
		assert.Len(t, f.SHA256, 64)
	}

	dst := filepath.Join(t.TempDir(), "restored")
	rm, err := Restore(archive, dst)
	require.NoError(t, err)
	assert.Len(t, rm.Files, 2)

	got, err := os.ReadFile(filepath.Join(dst, "save-alt.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"version":1,"gameSpeed":2}`, string(got))
	_, err = os.Stat(filepath.Join(dst, "save-default.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	want, err := DirDigest(src)
	require.NoError(t, err)
	have, err := DirDigest(dst)
	require.NoError(t, err)
	assert.Equal(t, want, have)
}

func TestBackupRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "save-default.json")
	writeFile(t, file, "{}")
	_, err := Backup(file, filepath.Join(t.TempDir(), "out.tar.gz"))
	assert.Error(t, err)
}

type entry struct {
	name string
	body string
}

func writeArchive(t *testing.T, path string, entries ...entry) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for _, e := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(e.body)),
		}))
		_, err := tw.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func TestRestoreRejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	writeArchive(t, archive, entry{"../escape.json", "bad"})

	_, err := Restore(archive, filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}

func TestRestoreDetectsTamperedSave(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "tampered.tar.gz")
	writeArchive(t, archive,
		entry{"save-default.json", `{"version":1,"wallet":{"gold":999999}}`},
		entry{ManifestName, `{"files":[{"path":"save-default.json","size":13,"sha256":"0000"}]}`},
	)

	_, err := Restore(archive, filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestRestoreWithoutManifest(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "legacy.tar.gz")
	writeArchive(t, archive, entry{"save-default.json", `{"version":1}`})

	dst := filepath.Join(t.TempDir(), "out")
	m, err := Restore(archive, dst)
	require.NoError(t, err)
	assert.Empty(t, m.Files)
	assert.FileExists(t, filepath.Join(dst, "save-default.json"))
}

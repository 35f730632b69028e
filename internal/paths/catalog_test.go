package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("BLItemNo\n"), 0o644))
}

func TestNewCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "castle.csv"))
	writeFile(t, filepath.Join(dir, "owned.csv.gz"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	c, err := NewCatalog(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, c.Dir())
	assert.Equal(t, []string{"castle.csv", "owned.csv.gz"}, c.Names(), "directories are skipped")
}

func TestNewCatalogErrors(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		_, err := NewCatalog(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file instead of dir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.csv")
		writeFile(t, path)
		_, err := NewCatalog(path)
		assert.Error(t, err)
	})

	t.Run("empty dir means empty catalog", func(t *testing.T) {
		c, err := NewCatalog("")
		require.NoError(t, err)
		assert.Empty(t, c.Names())
	})
}

func TestCatalogResolve(t *testing.T) {
	dir := t.TempDir()
	castle := filepath.Join(dir, "castle.csv")
	writeFile(t, castle)
	outside := filepath.Join(t.TempDir(), "loose.csv")
	writeFile(t, outside)

	c, err := NewCatalog(dir)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "existing path as is", ref: outside, want: outside},
		{name: "by file name", ref: "castle.csv", want: castle},
		{name: "by bare name", ref: "castle", want: castle},
		{name: "unknown name", ref: "pirate-ship", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Resolve(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrListNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

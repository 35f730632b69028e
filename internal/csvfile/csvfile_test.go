package csvfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partslist/internal/paths"
	"github.com/mesh-intelligence/partslist/pkg/types"
)

// fixture resolves a parts list under testdata/parts_lists.
func fixture(t *testing.T, name string) string {
	t.Helper()
	c, err := paths.NewCatalog(filepath.Join("..", "..", "testdata", "parts_lists"))
	require.NoError(t, err)
	p, err := c.Resolve(name)
	require.NoError(t, err)
	return p
}

func TestImportSingle(t *testing.T) {
	path := fixture(t, "one_red_2x2_brick")

	list, err := Import(path)
	require.NoError(t, err)

	assert.Equal(t, path, list.Path)
	assert.Equal(t, types.DefaultHeader, list.Header)
	require.Equal(t, 1, list.Len(), "unique parts, not total parts")
	p, ok := list.Get("3003:Red")
	require.True(t, ok)
	assert.Equal(t, "3003", p.CatalogNo)
	assert.Equal(t, "Red", p.ColorName)
	assert.Equal(t, 1, p.Quantity)
}

func TestImportStopsAtTrailer(t *testing.T) {
	list, err := Import(fixture(t, "one_red_2x4_2x2_bricks"))
	require.NoError(t, err)
	assert.Equal(t, []string{"3001:Red", "3003:Red"}, list.Keys())
}

func TestImportComplex(t *testing.T) {
	list, err := Import(fixture(t, "complex_parts_list"))
	require.NoError(t, err)

	assert.Equal(t, 83, list.Len())
	assert.Equal(t, 1090, list.TotalQuantity())
	p, ok := list.Get("3003:Red")
	require.True(t, ok)
	assert.Equal(t, 31, p.Quantity)
	_, ok = list.Get("3001:Red")
	assert.False(t, ok)
}

func TestImportSumsDuplicateRows(t *testing.T) {
	list, err := Import(fixture(t, "duplicate_rows"))
	require.NoError(t, err)

	require.Equal(t, 2, list.Len())
	p, _ := list.Get("3001:Red")
	assert.Equal(t, 5, p.Quantity)
	assert.InDelta(t, 11.6, p.Weight, 1e-9)
}

func TestImportErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "gone.csv"), wantErr: types.ErrImport},
		{name: "directory", path: t.TempDir(), wantErr: types.ErrImport},
		{name: "wrong extension", path: fixture(t, "not_a_list.txt"), wantErr: types.ErrImport},
		{name: "empty file", path: empty, wantErr: types.ErrImport},
		{name: "malformed quantity", path: fixture(t, "malformed_quantity"), wantErr: types.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Import(tt.path)
			assert.Nil(t, list)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.path, "errors name the failing input")
		})
	}
}

func TestImportParseErrorReportsLine(t *testing.T) {
	_, err := Import(fixture(t, "malformed_quantity"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	var rowErr *types.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "a few", rowErr.Value)
}

func TestImportStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "\ufeff" + strings.Join(types.DefaultHeader, ",") + "\n" +
		"3001,300121,3001,Brick 2 x 4,5,4,Red,Solid Colors,1,2.32\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, "BLItemNo", list.Header[0])
}

func TestExportFullRoundTrip(t *testing.T) {
	src, err := Import(fixture(t, "complex_parts_list"))
	require.NoError(t, err)

	for _, name := range []string{"out.csv", "out.csv.gz", "out.csv.zst"} {
		t.Run(name, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), name)
			require.NoError(t, ExportFull(src, target))

			got, err := Import(target)
			require.NoError(t, err)
			assert.Equal(t, src.Header, got.Header)
			assert.True(t, got.EqualParts(src), "round trip must reproduce every part")
		})
	}
}

func TestExportFullSynthesizedUsesDefaultHeader(t *testing.T) {
	list := types.NewPartsList()
	list.Put(&types.Part{CatalogNo: "3001", ColorName: "Red", Quantity: 2, Weight: 4.64})
	target := filepath.Join(t.TempDir(), "merged.csv")

	require.NoError(t, ExportFull(list, target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(types.DefaultHeader, ","), lines[0])
	assert.Equal(t, "3001,,,,,,Red,,2,4.64", lines[1])
}

func TestExportSimple(t *testing.T) {
	list, err := Import(fixture(t, "one_red_2x4_2x2_bricks"))
	require.NoError(t, err)
	target := filepath.Join(t.TempDir(), "simple.csv")

	require.NoError(t, ExportSimple(list, target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "part,color,quantity\n3001,Red,1\n3003,Red,1\n", string(data))
}

func TestExportJSON(t *testing.T) {
	list, err := Import(fixture(t, "one_red_2x4_2x2_bricks"))
	require.NoError(t, err)
	target := filepath.Join(t.TempDir(), "summary.json")

	require.NoError(t, Export(list, target, "JSON"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var got []types.SummaryEntry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.ElementsMatch(t, []types.SummaryEntry{
		{Part: "3001", Color: "Red", Quantity: 1},
		{Part: "3003", Color: "Red", Quantity: 1},
	}, got)
}

func TestExportUnknownFormat(t *testing.T) {
	err := Export(types.NewPartsList(), filepath.Join(t.TempDir(), "x.xml"), "xml")
	assert.ErrorIs(t, err, types.ErrConfig)
}

func TestExportFailureLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "keep.csv")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))

	boom := errors.New("boom")
	err := writeAtomic(target, func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be removed")
}

func TestExportIntoMissingDir(t *testing.T) {
	err := ExportFull(types.NewPartsList(), filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	var logs bytes.Buffer
	im := NewImporter(zerolog.New(&logs))
	refs := []string{
		fixture(t, "one_red_2x4_brick"),
		filepath.Join(t.TempDir(), "missing.csv"),
		fixture(t, "complex_parts_list"),
		fixture(t, "one_red_2x2_brick"),
	}

	lists, err := im.LoadAll(context.Background(), refs)
	require.NoError(t, err)

	require.Len(t, lists, 3)
	assert.Equal(t, refs[0], lists[0].Path)
	assert.Equal(t, refs[2], lists[1].Path)
	assert.Equal(t, refs[3], lists[2].Path)
	assert.Contains(t, logs.String(), "skipping parts list")
	assert.Contains(t, logs.String(), "missing.csv")
}

func TestLoadAllStrict(t *testing.T) {
	im := &Importer{Logger: zerolog.Nop(), Strict: true, Concurrency: 1}

	_, err := im.LoadAll(context.Background(), []string{
		fixture(t, "one_red_2x4_brick"),
		filepath.Join(t.TempDir(), "missing.csv"),
	})
	assert.ErrorIs(t, err, types.ErrImport)
}

func TestLoadAllParseErrorAborts(t *testing.T) {
	im := NewImporter(zerolog.Nop())

	lists, err := im.LoadAll(context.Background(), []string{
		fixture(t, "one_red_2x4_brick"),
		fixture(t, "malformed_quantity"),
	})
	assert.Nil(t, lists)
	assert.ErrorIs(t, err, types.ErrParse)
}

func TestLoadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewImporter(zerolog.Nop()).LoadAll(ctx, []string{fixture(t, "one_red_2x4_brick")})
	assert.ErrorIs(t, err, context.Canceled)
}

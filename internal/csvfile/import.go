// Package csvfile reads and writes parts lists as CSV and JSON files.
//
// Import reads the BrickLink-style 10-column layout. Export writes full
// CSV, simple (part, color, quantity) CSV, or a JSON summary. A ".gz" or
// ".zst" suffix on any path selects gzip or zstd compression.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

// extCSV is the extension every importable list must carry, before any
// compression suffix.
const extCSV = ".csv"

// utf8BOM is stripped from the first header cell; spreadsheet exports
// often start with it.
const utf8BOM = "\ufeff"

// Importer loads parts lists from disk.
type Importer struct {
	Logger zerolog.Logger

	// Strict makes LoadAll fail on unimportable paths instead of skipping
	// them.
	Strict bool

	// Concurrency bounds parallel imports in LoadAll; <= 0 means 8.
	Concurrency int
}

// NewImporter returns an Importer that logs to logger and skips
// unimportable paths.
func NewImporter(logger zerolog.Logger) *Importer {
	return &Importer{Logger: logger}
}

// Import reads the parts list at path without logging.
func Import(path string) (*types.PartsList, error) {
	return NewImporter(zerolog.Nop()).Import(path)
}

// Import reads the parts list at path.
//
// It fails with ErrImport when the path is missing, is a directory, or is
// not a .csv file, and with ErrParse on the first malformed data row. The
// first row is kept as the header. Reading stops at the first row whose
// first field is empty; that row and everything after it is a trailer
// (totals, lot counts) and is ignored. Rows sharing a key are summed.
func (im *Importer) Import(path string) (*types.PartsList, error) {
	if err := checkImportable(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w: %w", path, types.ErrImport, err)
	}
	defer f.Close()

	rc, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w: %w", path, types.ErrImport, err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1 // trailer rows are often shorter

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("import %s: %w: missing header row", path, types.ErrImport)
	}
	if err != nil {
		return nil, fmt.Errorf("import %s: %w: %w", path, types.ErrParse, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	list := types.NewPartsList()
	list.Path = path
	list.Header = header

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("import %s: %w: %w", path, types.ErrParse, err)
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			break
		}

		part, err := types.PartFromRow(row)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("import %s: line %d: %w", path, line, err)
		}
		if list.Insert(part) {
			im.Logger.Debug().Str("path", path).Str("key", part.Key()).Msg("duplicate row summed")
		}
	}

	im.Logger.Debug().Str("path", path).Int("unique", list.Len()).Msg("imported parts list")
	return list, nil
}

// checkImportable applies the path checks that precede any read.
func checkImportable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("import %s: %w: %w", path, types.ErrImport, err)
	}
	if info.IsDir() {
		return fmt.Errorf("import %s: %w: is a directory", path, types.ErrImport)
	}
	base, _ := splitCompression(path)
	if !strings.EqualFold(filepath.Ext(base), extCSV) {
		return fmt.Errorf("import %s: %w: not a %s file", path, types.ErrImport, extCSV)
	}
	return nil
}

package csvfile

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

// Export writes list to target in the given format (one of the
// types.Format constants, case-insensitive).
func Export(list *types.PartsList, target, format string) error {
	switch strings.ToLower(format) {
	case types.FormatCSV:
		return ExportFull(list, target)
	case types.FormatSimpleCSV:
		return ExportSimple(list, target)
	case types.FormatJSON:
		return ExportJSON(list, target)
	default:
		return fmt.Errorf("export %s: %w: unknown format %q", target, types.ErrConfig, format)
	}
}

// ExportFull writes every part with all ten fields. The header is the one
// the list was imported with, or types.DefaultHeader for synthesized lists.
func ExportFull(list *types.PartsList, target string) error {
	header := list.Header
	if len(header) == 0 {
		header = types.DefaultHeader
	}
	return writeAtomic(target, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, p := range list.Sorted() {
			if err := cw.Write(p.Row()); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// ExportSimple writes the part, color, quantity layout used by catalog
// matching tools.
func ExportSimple(list *types.PartsList, target string) error {
	return writeAtomic(target, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(types.SimpleHeader); err != nil {
			return err
		}
		for _, p := range list.Sorted() {
			if err := cw.Write(p.SimpleRow()); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// ExportJSON writes the list summary as a JSON array of
// {part, color, quantity} objects.
func ExportJSON(list *types.PartsList, target string) error {
	return writeAtomic(target, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list.Summary())
	})
}

// writeAtomic writes target through a temp file in the same directory,
// then fsyncs and renames it into place. On any failure the temp file is
// closed and removed and target is left untouched.
func writeAtomic(target string, fill func(w io.Writer) error) (err error) {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".partslist-*.tmp")
	if err != nil {
		return fmt.Errorf("export %s: creating temp file: %w", target, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	zw, err := compress(bw, target)
	if err != nil {
		return fmt.Errorf("export %s: %w", target, err)
	}
	if err = fill(zw); err != nil {
		return fmt.Errorf("export %s: writing records: %w", target, err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("export %s: closing compressor: %w", target, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("export %s: flushing buffer: %w", target, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("export %s: syncing temp file: %w", target, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("export %s: closing temp file: %w", target, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("export %s: renaming temp file: %w", target, err)
	}
	return nil
}

package types

import (
	"fmt"
	"strings"
)

// Operating modes for a partslist run.
const (
	ModeMissingParts = "missing-parts"
	ModeMerge        = "merge"
	ModeIntersection = "intersection"
)

// Save formats for the result of a run.
const (
	FormatCSV       = "csv"
	FormatSimpleCSV = "simple-csv"
	FormatJSON      = "json"
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatCSV:       true,
	FormatSimpleCSV: true,
	FormatJSON:      true,
}

// Config describes a single partslist run.
type Config struct {
	Mode       string   `json:"mode" yaml:"mode"`
	Owned      []string `json:"owned" yaml:"owned"`
	Unowned    []string `json:"unowned" yaml:"unowned"`
	SavePath   string   `json:"save_path" yaml:"save_path"`
	SaveFormat string   `json:"save_format" yaml:"save_format"`
	AnyColor   []string `json:"any_color" yaml:"any_color"`
	ListsDir   string   `json:"lists_dir" yaml:"lists_dir"`
}

// Validate checks that the Config is well-formed before any list is read.
// Every failure wraps ErrConfig.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeMissingParts:
		if len(c.Unowned) == 0 {
			return fmt.Errorf("%w: %s needs at least one unowned parts list", ErrConfig, c.Mode)
		}
	case ModeMerge, ModeIntersection:
		if len(c.Owned)+len(c.Unowned) == 0 {
			return fmt.Errorf("%w: %s needs at least one parts list", ErrConfig, c.Mode)
		}
	case "":
		return fmt.Errorf("%w: no mode selected", ErrConfig)
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrConfig, c.Mode)
	}

	if c.SavePath != "" && c.SaveFormat == "" {
		return fmt.Errorf("%w: save path %q given without a save format", ErrConfig, c.SavePath)
	}
	if c.SavePath == "" && c.SaveFormat != "" {
		return fmt.Errorf("%w: save format %q given without a save path", ErrConfig, c.SaveFormat)
	}
	if c.SaveFormat != "" && !knownFormats[strings.ToLower(c.SaveFormat)] {
		return fmt.Errorf("%w: unknown save format %q", ErrConfig, c.SaveFormat)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partslist/internal/csvfile"
	"github.com/mesh-intelligence/partslist/internal/logging"
	"github.com/mesh-intelligence/partslist/internal/paths"
	"github.com/mesh-intelligence/partslist/internal/report"
	"github.com/mesh-intelligence/partslist/pkg/operations"
	"github.com/mesh-intelligence/partslist/pkg/types"
)

// reportTitles maps each mode to the heading of its console report.
var reportTitles = map[string]string{
	types.ModeMissingParts: "Missing parts:",
	types.ModeMerge:        "Merged parts:",
	types.ModeIntersection: "Common parts:",
}

// runParts validates the flags, loads every list, applies the selected
// operation, reports the result and saves it when asked to.
func runParts(cmd *cobra.Command, flags *rootFlags) error {
	mode, err := selectMode(flags)
	if err != nil {
		return err
	}
	cfg := types.Config{
		Mode:       mode,
		Owned:      flags.owned,
		Unowned:    flags.unowned,
		SavePath:   flags.savePath,
		SaveFormat: strings.ToLower(flags.saveFormat),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), v.GetString(cfgKeyLogLevel), v.GetString(cfgKeyLogFormat))

	cfg.ListsDir, err = paths.ResolveListsDir(flags.listsDir, v.GetString(cfgKeyListsDir))
	if err != nil {
		return fmt.Errorf("resolve lists dir: %w", err)
	}
	cfg.AnyColor = append(v.GetStringSlice(cfgKeyAnyColor), flags.anyColor...)

	catalog, err := paths.NewCatalog(cfg.ListsDir)
	if err != nil {
		return err
	}
	ownedPaths, err := resolveAll(catalog, cfg.Owned, flags.strict, logger)
	if err != nil {
		return err
	}
	unownedPaths, err := resolveAll(catalog, cfg.Unowned, flags.strict, logger)
	if err != nil {
		return err
	}

	importer := &csvfile.Importer{Logger: logger, Strict: flags.strict}
	owned, err := importer.LoadAll(cmd.Context(), ownedPaths)
	if err != nil {
		return err
	}
	unowned, err := importer.LoadAll(cmd.Context(), unownedPaths)
	if err != nil {
		return err
	}

	if len(cfg.AnyColor) > 0 {
		logger.Info().Strs("colors", cfg.AnyColor).Msg("matching parts in any color")
		for _, l := range owned {
			l.SetAnyColor(cfg.AnyColor...)
		}
		for _, l := range unowned {
			l.SetAnyColor(cfg.AnyColor...)
		}
	}

	logger.Info().
		Str("mode", cfg.Mode).
		Strs("unowned", listPaths(unowned)).
		Strs("owned", listPaths(owned)).
		Msg("combining parts lists")

	result, err := evaluate(cfg.Mode, owned, unowned)
	if err != nil {
		return err
	}

	if err := report.NewPrinter(cmd.OutOrStdout()).Dump(reportTitles[cfg.Mode], result); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	if cfg.SavePath == "" {
		return nil
	}
	if err := csvfile.Export(result, cfg.SavePath, cfg.SaveFormat); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.SavePath).Str("format", cfg.SaveFormat).Msg("saved result")
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", cfg.SaveFormat, cfg.SavePath)
	return nil
}

// selectMode returns the single mode chosen by flag.
func selectMode(flags *rootFlags) (string, error) {
	var modes []string
	if flags.missingParts {
		modes = append(modes, types.ModeMissingParts)
	}
	if flags.merge {
		modes = append(modes, types.ModeMerge)
	}
	if flags.intersection {
		modes = append(modes, types.ModeIntersection)
	}
	switch len(modes) {
	case 0:
		return "", fmt.Errorf("%w: choose one of --missing-parts, --merge, --intersection", types.ErrConfig)
	case 1:
		return modes[0], nil
	default:
		return "", fmt.Errorf("%w: modes %s are mutually exclusive", types.ErrConfig, strings.Join(modes, ", "))
	}
}

// resolveAll resolves list references through the catalog. Unknown
// references are skipped with a warning unless strict is set.
func resolveAll(catalog *paths.Catalog, refs []string, strict bool, logger zerolog.Logger) ([]string, error) {
	resolved := make([]string, 0, len(refs))
	for _, ref := range refs {
		p, err := catalog.Resolve(ref)
		if err != nil {
			if strict || !errors.Is(err, types.ErrListNotFound) {
				return nil, err
			}
			logger.Warn().Str("list", ref).Msg("skipping unknown parts list")
			continue
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

// evaluate applies the algebra for mode.
//
// Missing parts is the union of the unowned lists minus the union of the
// owned lists; with no owned lists everything unowned is missing. Merge and
// intersection treat owned and unowned lists alike, unowned first.
func evaluate(mode string, owned, unowned []*types.PartsList) (*types.PartsList, error) {
	all := append(append([]*types.PartsList{}, unowned...), owned...)

	switch mode {
	case types.ModeMissingParts:
		if len(unowned) == 0 {
			return nil, fmt.Errorf("%s: %w: no unowned parts list could be loaded", mode, types.ErrArgument)
		}
		want, err := operations.Union(unowned...)
		if err != nil {
			return nil, err
		}
		have := types.NewPartsList()
		if len(owned) > 0 {
			if have, err = operations.Union(owned...); err != nil {
				return nil, err
			}
		}
		return operations.Difference(want, have)
	case types.ModeMerge:
		return operations.Union(all...)
	case types.ModeIntersection:
		return operations.Intersection(all...)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", types.ErrConfig, mode)
	}
}

func listPaths(lists []*types.PartsList) []string {
	out := make([]string, len(lists))
	for i, l := range lists {
		out[i] = l.Path
	}
	return out
}

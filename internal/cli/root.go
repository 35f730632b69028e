// Package cli implements the partslist command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds the flag values of one command tree.
type rootFlags struct {
	configDir string
	listsDir  string
	logLevel  string
	logFormat string

	missingParts bool
	merge        bool
	intersection bool

	owned      []string
	unowned    []string
	savePath   string
	saveFormat string
	anyColor   []string
	strict     bool
}

// NewRootCmd creates the top-level "partslist" command with its flags and
// subcommands. Each call returns an independent command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "partslist",
		Short: "Compare, merge and intersect parts lists",
		Long: `partslist loads parts list CSV exports and combines them.

Exactly one mode is required:
  --missing-parts  parts of the unowned lists not covered by the owned lists
  --merge          all lists added together
  --intersection   parts the lists have in common, at their smallest quantity

Lists are given as paths or as names found in the lists directory.

Example:
  partslist --missing-parts -u castle.csv -o bulk.csv -o sets.csv
  partslist --merge -u castle -u ship -s wanted.csv -f simple-csv
  partslist --missing-parts -u castle -o bulk --any-color "Light Bluish Gray"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&flags.listsDir, "lists-dir", "", "directory searched for lists given by name")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error, off")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: console, json")

	f := root.Flags()
	f.BoolVar(&flags.missingParts, "missing-parts", false, "list the unowned parts that the owned lists do not cover")
	f.BoolVar(&flags.merge, "merge", false, "merge all given lists, owned or unowned, into one")
	f.BoolVar(&flags.intersection, "intersection", false, "find the parts common to all given lists")
	f.StringArrayVarP(&flags.owned, "owned", "o", nil, "parts list you own (repeatable)")
	f.StringArrayVarP(&flags.unowned, "unowned", "u", nil, "parts list you do not own (repeatable)")
	f.StringVarP(&flags.savePath, "save-path", "s", "", "path to save the result to")
	f.StringVarP(&flags.saveFormat, "save-format", "f", "", "format to save the result in: csv, simple-csv, json")
	f.StringArrayVar(&flags.anyColor, "any-color", nil, "color name whose parts match any color (repeatable)")
	f.BoolVar(&flags.strict, "strict", false, "fail instead of skipping lists that cannot be imported")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code. Problems with the
// arguments or the input lists are user errors; anything else is a
// system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrConfig),
		errors.Is(err, types.ErrArgument),
		errors.Is(err, types.ErrListNotFound),
		errors.Is(err, types.ErrImport),
		errors.Is(err, types.ErrParse):
		return exitUserError
	default:
		return exitSysError
	}
}

// Package cli is the command-line entry point of the coverage tool. It turns
// positional arguments into queries and prints their results.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sensorcoverage/internal/adapters/out/reportsource"
	"sensorcoverage/internal/core/application/usecases/queries"
	"sensorcoverage/internal/core/domain/services"
	"sensorcoverage/internal/pkg/errs"

	"github.com/spf13/cobra"
)

const strategyFlag = "--strategy"

// Dependencies are the use cases the commands run.
type Dependencies struct {
	// DefaultStrategy is used when --strategy is not given.
	DefaultStrategy services.Strategy
	// NewCountHandler builds the count handler for a counting strategy.
	NewCountHandler func(strategy services.Strategy) (queries.CountExcludedPositionsQueryHandler, error)
	// CoverageHandler serves the intervals command.
	CoverageHandler queries.GetRowCoverageQueryHandler
	// Serve runs the HTTP API and scheduled jobs until ctx is cancelled.
	Serve func(ctx context.Context) error
}

// NewRootCommand builds the command tree:
//
//	sensorcoverage [--strategy merge|point-set] <input-file> <row>
//	sensorcoverage intervals <input-file> <row>
//	sensorcoverage serve
//
// Flag parsing is done by hand on the positional commands so that a negative
// row such as -10 is not mistaken for a flag.
func NewRootCommand(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:   "sensorcoverage [--strategy merge|point-set] <input-file> <row>",
		Short: "Count the positions on a row where no beacon can be",
		Long: `Reads sensor reports, one per line:

  Sensor at x=2, y=18: closest beacon is at x=-2, y=15

and prints how many positions on the given row are covered by at least one
sensor and do not hold a reported beacon.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			return runCount(cmd, deps, args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newIntervalsCommand(deps), newServeCommand(deps))
	return root
}

func runCount(cmd *cobra.Command, deps Dependencies, args []string) error {
	strategy, positional, err := extractStrategy(args, deps.DefaultStrategy)
	if err != nil {
		return err
	}

	path, row, err := parsePositional(positional)
	if err != nil {
		return err
	}

	handler, err := deps.NewCountHandler(strategy)
	if err != nil {
		return err
	}

	query, err := queries.NewCountExcludedPositionsQuery(reportsource.NewFileSource(path), row)
	if err != nil {
		return err
	}

	result, err := handler.Handle(cmd.Context(), query)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "POSITION COUNT: %d\n", result.Count)
	return err
}

// parsePositional reads <input-file> <row>.
func parsePositional(args []string) (string, int, error) {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return "", 0, errs.NewValueIsRequiredError("input file")
	}
	if len(args) < 2 {
		return "", 0, errs.NewValueIsRequiredError("row")
	}
	if len(args) > 2 {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("arguments",
			fmt.Errorf("expected <input-file> <row>, got %d arguments", len(args)))
	}

	row, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("row", err)
	}

	return args[0], row, nil
}

// extractStrategy removes "--strategy name" or "--strategy=name" from args.
func extractStrategy(args []string, fallback services.Strategy) (services.Strategy, []string, error) {
	strategy := fallback
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == strategyFlag:
			if i+1 >= len(args) {
				return "", nil, errs.NewValueIsRequiredError("strategy")
			}
			strategy = services.Strategy(args[i+1])
			i++
		case strings.HasPrefix(arg, strategyFlag+"="):
			strategy = services.Strategy(strings.TrimPrefix(arg, strategyFlag+"="))
		default:
			rest = append(rest, arg)
		}
	}

	return strategy, rest, nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Execute runs the command tree against args, writing results to out and
// errors to errOut.
func Execute(ctx context.Context, root *cobra.Command, args []string, out, errOut io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

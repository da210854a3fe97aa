package cli

import (
	"fmt"
	"strconv"

	"sensorcoverage/internal/adapters/out/reportsource"
	"sensorcoverage/internal/core/application/usecases/queries"
	"sensorcoverage/internal/core/domain/model/area"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newIntervalsCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:                "intervals <input-file> <row>",
		Short:              "Show how each sensor covers the row",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}

			path, row, err := parsePositional(args)
			if err != nil {
				return err
			}

			query, err := queries.NewGetRowCoverageQuery(reportsource.NewFileSource(path), row)
			if err != nil {
				return err
			}

			result, err := deps.CoverageHandler.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			return printCoverage(cmd, result)
		},
	}
}

func printCoverage(cmd *cobra.Command, result queries.GetRowCoverageQueryResponse) error {
	out := cmd.OutOrStdout()
	coverage := result.Coverage

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Sensor", "Radius", "Left", "Right", "Width"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, sp := range coverage.Spans {
		width, err := sp.Span.Len()
		if err != nil {
			return err
		}
		table.Append([]string{
			fmt.Sprintf("(%d,%d)", sp.Sensor.X(), sp.Sensor.Y()),
			strconv.Itoa(sp.Radius),
			strconv.Itoa(sp.Span.Left()),
			strconv.Itoa(sp.Span.Right()),
			strconv.Itoa(width),
		})
	}
	table.Render()

	merged := lo.Map(coverage.Merged, func(s area.Span, _ int) string {
		return s.String()
	})
	beacons := lo.Map(coverage.Beacons, func(x int, _ int) string {
		return strconv.Itoa(x)
	})

	_, err := fmt.Fprintf(out, "\nROW: %d\nMERGED: %v\nBEACONS: %v\nPOSITION COUNT: %d\n",
		coverage.Row, merged, beacons, coverage.Count)
	return err
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/colselect-go/internal/app"
	"github.com/ukaji3/colselect-go/pkg/colselect"
	"github.com/ukaji3/colselect-go/pkg/colselect/models"
	"github.com/ukaji3/colselect-go/pkg/colselect/output"
)

func newColumnsCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "columns <input.xlsx|input.xls>",
		Short: "List column names from the header row of the first sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := colselect.ListColumns(args[0], s.opts)
			if err != nil {
				return err
			}

			if s.output == "json" {
				if cols == nil {
					cols = []string{}
				}
				return s.printJSON(cmd.OutOrStdout(), cols)
			}
			for _, c := range cols {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newSelectCmd(s *settings) *cobra.Command {
	var (
		columns []string
		all     bool
		preset  string
	)

	cmd := &cobra.Command{
		Use:   "select <input.xlsx|input.xls>",
		Short: "Write a workbook keeping only the selected columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			sel, err := buildSelection(path, s.opts, columns, all, preset)
			if err != nil {
				return err
			}

			opts := s.opts
			opts.Progress = func(stage colselect.Stage, fraction float64) {
				log.Debug().
					Str("stage", string(stage)).
					Float64("progress", fraction).
					Msg("Selection progress")
			}

			res, err := colselect.ProjectAndSaveResult(path, sel, opts)
			if err != nil {
				return err
			}
			if missing := res.Missing(sel); len(missing) > 0 {
				log.Warn().
					Strs("columns", missing).
					Msg("Selected columns not found in any sheet")
			}

			if s.output == "json" {
				data, err := output.ResultToJSON(res, s.pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "Columns to keep (comma-separated or repeated)")
	cmd.Flags().BoolVar(&all, "all", false, "Keep every column of the first sheet")
	cmd.Flags().StringVar(&preset, "preset", "", "YAML preset file, optionally suffixed with :name")
	cmd.MarkFlagsMutuallyExclusive("all", "columns")
	cmd.MarkFlagsMutuallyExclusive("all", "preset")
	return cmd
}

// buildSelection merges --columns and --preset, or lists every column for
// --all. An empty result is passed through so the core reports it.
func buildSelection(path string, opts colselect.Options, columns []string, all bool, preset string) (models.Selection, error) {
	if all {
		cols, err := colselect.ListColumns(path, opts)
		if err != nil {
			return nil, err
		}
		return models.NewSelection(cols...), nil
	}

	sel := models.NewSelection()
	for _, c := range columns {
		if c = strings.TrimSpace(c); c != "" {
			sel[c] = struct{}{}
		}
	}
	if preset != "" {
		p, err := app.LoadPreset(preset)
		if err != nil {
			return nil, err
		}
		sel.Merge(p.Selection())
		log.Debug().
			Str("preset", p.Name).
			Int("columns", len(p.Columns)).
			Msg("Loaded preset")
	}
	return sel, nil
}

func newInspectCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input.xlsx|input.xls>",
		Short: "Summarize every sheet of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := colselect.Inspect(args[0], s.opts)
			if err != nil {
				return err
			}

			if s.output == "json" {
				data, err := output.SummariesToJSON(summaries, s.pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SHEET\tROWS\tRANGE\tCOLUMNS")
			for _, sum := range summaries {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", sum.Name, sum.Rows, sum.UsedRange, strings.Join(sum.Columns, ", "))
			}
			return tw.Flush()
		},
	}
}

// Package main provides the CLI entry point for colselect.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/colselect-go/internal/app"
	"github.com/ukaji3/colselect-go/pkg/colselect"
	"github.com/ukaji3/colselect-go/pkg/colselect/output"
)

// settings holds values shared by all subcommands after flags and
// environment are resolved.
type settings struct {
	headerRow     int
	outputDirName string
	output        string
	pretty        bool
	opts          colselect.Options
}

func main() {
	app.SetupEnvironment()
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	s := &settings{}
	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if s.output == "json" {
			obj := output.ErrorObject{Error: err.Error()}
			if kind, ok := colselect.KindOf(err); ok {
				obj.Kind = kind.String()
			}
			data, _ := output.ToJSON(obj, s.pretty)
			fmt.Fprintln(stdout, string(data))
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(s *settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colselect",
		Short: "Keep selected columns across every sheet of an Excel workbook",
		Long: `colselect reads column names from the header row of an Excel workbook
and writes a new workbook holding only the chosen columns of every sheet
into a "Selected Data" directory next to the source file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().IntVar(&s.headerRow, "header-row", colselect.DefaultHeaderRow, "1-based row holding column names")
	rootCmd.PersistentFlags().StringVar(&s.outputDirName, "output-dir-name", colselect.DefaultOutputDirName, "Directory created next to the source file")
	rootCmd.PersistentFlags().StringVarP(&s.output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVar(&s.pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(newColumnsCmd(s))
	rootCmd.AddCommand(newSelectCmd(s))
	rootCmd.AddCommand(newInspectCmd(s))
	return rootCmd
}

// resolve applies precedence flag > environment > default.
func (s *settings) resolve(cmd *cobra.Command) error {
	if s.output != "table" && s.output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", s.output)
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("header-row") {
		cfg.HeaderRow = s.headerRow
	}
	if flags.Changed("output-dir-name") {
		cfg.OutputDirName = s.outputDirName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.opts = cfg.Options()
	return nil
}

func (s *settings) printJSON(w io.Writer, v interface{}) error {
	data, err := output.ToJSON(v, s.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

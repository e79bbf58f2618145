package main

import (
	"github.com/spf13/cobra"

	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/pkg/param"
)

func init() {
	rootCmd.AddCommand(newColumnsCmd())
}

func newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns <file.csv>",
		Short: "Show header columns and which soul columns resolved",
		Long: `The columns command reads the header record of a param CSV and reports
every field together with its index, marking the fields that the scale
command would rewrite.

Example:
  runectl columns ER_param.csv
  runectl columns ER_param.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumns(args[0])
		},
	}
	return cmd
}

// columnsReport is the JSON shape for --json output.
type columnsReport struct {
	Input   string         `json:"input"`
	Header  []string       `json:"header"`
	Targets map[string]int `json:"targets"`
}

func runColumns(path string) error {
	text, err := param.ReadFileText(path)
	if err != nil {
		return err
	}

	header, targets, err := param.InspectColumns(text, nil)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(columnsReport{Input: path, Header: header, Targets: targets})
	}

	printInfo("Header fields:\n")
	for i, name := range header {
		marker := ""
		if _, ok := targets[name]; ok {
			marker = "  <- target"
		}
		printInfo("  %3d  %s%s\n", i, name, marker)
	}

	if len(targets) == 0 {
		printInfo("\nNo target columns present.\n")
	}

	return nil
}

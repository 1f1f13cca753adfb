package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/haproxytech/barchart-go/pkg/barchart"
	"github.com/haproxytech/barchart-go/pkg/barchart/workbook"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Print the charts stored in an xlsx workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", path)
			}

			charts, err := workbook.Inspect(path)
			if err != nil {
				return barchart.NewIOError("inspect", path, err)
			}

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(charts, "", "  ")
			} else {
				data, err = json.Marshal(charts)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

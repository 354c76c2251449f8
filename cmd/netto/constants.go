package main

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/nettogo/internal/constants"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func constantsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "constants [year]",
		Short: "Print the contribution and tax constants",
		Long: `Print the constants table, or the constants of a single year.

The output is a valid constants file and can be edited and passed back
with --constants.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.settings.ConstantsTable()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if opts.settings.Format == "json" {
					return fmt.Errorf("json output needs a year")
				}
				return table.Export(out)
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			c, err := table.Lookup(year)
			if err != nil {
				return err
			}

			if opts.settings.Format == "json" {
				data, err := json.MarshalIndent(c, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(constants.Document{Years: []domain.YearConstants{c}}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

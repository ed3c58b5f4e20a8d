package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command, which prints the tables a
// fixture registers, with their categories and dimensions.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tables in a dataset fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cancer type: %s\n", d.CancerType())
			for _, info := range d.Tables() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d x %d\n", info.Name, info.Category, info.Rows, info.Cols)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// JoinOptions holds the flags of the join command.
type JoinOptions struct {
	Kind         string
	Left         string
	Right        string
	LeftKeys     []string
	RightKeys    []string
	Genes        []string
	Filter       []string
	UseFilter    bool
	HideLocation bool
}

// joinKinds lists the supported join kinds.
var joinKinds = []string{
	"omics-omics",
	"metadata-metadata",
	"metadata-omics",
	"omics-mutations",
	"metadata-mutations",
}

// NewJoinCommand creates the join command, which runs one of the five
// join operations over a fixture and prints the result as TSV.
func NewJoinCommand(opts *RootOptions) *cobra.Command {
	jo := &JoinOptions{}

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Run a join over a dataset fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(opts)
			if err != nil {
				return err
			}

			var (
				joined   *table.Table
				warnings []warn.Warning
			)
			var filter *mutation.Filter
			if jo.UseFilter {
				filter = &mutation.Filter{Priority: jo.Filter}
			}

			switch jo.Kind {
			case "omics-omics":
				joined, warnings, err = d.JoinOmicsToOmics(jo.Left, jo.Right, jo.LeftKeys, jo.RightKeys)
			case "metadata-metadata":
				joined, warnings, err = d.JoinMetadataToMetadata(jo.Left, jo.Right, jo.LeftKeys, jo.RightKeys)
			case "metadata-omics":
				joined, warnings, err = d.JoinMetadataToOmics(jo.Left, jo.Right, jo.LeftKeys, jo.RightKeys)
			case "omics-mutations":
				joined, warnings, err = d.JoinOmicsToMutations(jo.Left, jo.Genes, jo.LeftKeys, filter, !jo.HideLocation)
			case "metadata-mutations":
				joined, warnings, err = d.JoinMetadataToMutations(jo.Left, jo.Genes, jo.LeftKeys, filter, !jo.HideLocation)
			default:
				return fmt.Errorf("invalid join kind %q: must be one of %v", jo.Kind, joinKinds)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), joined.RenderTSV())
			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jo.Kind, "kind", "", fmt.Sprintf("join kind %v (required)", joinKinds))
	cmd.Flags().StringVar(&jo.Left, "left", "", "left table name (required)")
	cmd.Flags().StringVar(&jo.Right, "right", "", "right table name (non-mutation kinds)")
	cmd.Flags().StringSliceVar(&jo.LeftKeys, "left-keys", nil, "columns or genes to select from the left table (default all)")
	cmd.Flags().StringSliceVar(&jo.RightKeys, "right-keys", nil, "columns or genes to select from the right table (default all)")
	cmd.Flags().StringSliceVar(&jo.Genes, "genes", nil, "mutation genes (mutation kinds)")
	cmd.Flags().StringSliceVar(&jo.Filter, "filter", nil, "mutation priority filter, most preferred first")
	cmd.Flags().BoolVar(&jo.UseFilter, "collapse", false, "collapse multiple mutations to one, using --filter then the default hierarchy")
	cmd.Flags().BoolVar(&jo.HideLocation, "hide-location", false, "drop *_Location columns from mutation joins")

	return cmd
}

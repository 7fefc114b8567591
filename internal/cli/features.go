package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"heart-risk-service/internal/core/domain"
)

func newFeaturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the model input features in vector order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "POS\tNAME\tLABEL\tKIND\tRANGE\tDEFAULT")
			for i, f := range domain.Features() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s-%s\t%s\n",
					i, f.Name, f.Summary, f.Kind,
					domain.FormatNumber(f.Min), domain.FormatNumber(f.Max),
					f.Echo(f.Default))
			}
			return tw.Flush()
		},
	}
}

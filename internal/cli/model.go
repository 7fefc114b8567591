package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newModelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect the configured model",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inspect",
		Short: "Load the configured model and print its metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, info, err := openProvider(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:      %s\n", info.Name)
			fmt.Fprintf(out, "Version:   %s\n", info.Version)
			fmt.Fprintf(out, "Kind:      %s\n", info.Kind)
			fmt.Fprintf(out, "Source:    %s\n", info.Source)
			fmt.Fprintf(out, "Features:  %s\n", strings.Join(info.Features, ", "))
			return nil
		},
	})
	return cmd
}

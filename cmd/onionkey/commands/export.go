package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"onionkey/internal/domain"
)

func exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored private key to stdout in the chosen format",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("service directory required (-d)")
			}
			raw, err := wire.Services.ExportKey(scheme(), dir, domain.KeyFormat(format))
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(raw)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "F", string(domain.FormatNative), "export format (native, pem, der, seed, expanded)")
	return cmd
}

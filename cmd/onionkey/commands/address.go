package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the onion address of the key in the service directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("service directory required (-d)")
			}
			addr, err := wire.Services.Address(scheme(), dir)
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func hostnameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hostname",
		Short: "Print the hostname file recorded in the service directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("service directory required (-d)")
			}
			hostname, err := wire.Store.Hostname(dir)
			if err != nil {
				return err
			}
			fmt.Println(hostname)
			return nil
		},
	}
}

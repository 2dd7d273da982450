package commands

import (
	"github.com/spf13/cobra"

	"onionkey/internal/app"
	"onionkey/internal/domain"
)

var (
	dir     string
	version int
	verbose bool

	wire *app.Wire
)

// scheme returns the Scheme selected by the --scheme-version flag.
func scheme() domain.Scheme { return domain.Scheme(version) }

func Execute() error {
	root := &cobra.Command{
		Use:   "onionkey",
		Short: "Manage hidden service identity keys and onion addresses",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				Scheme:  scheme(),
				Verbose: verbose,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&dir, "dir", "d", "", "hidden service directory")
	root.PersistentFlags().IntVarP(&version, "scheme-version", "V", 3, "address scheme version (2 or 3)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(generateCmd(), addressCmd(), hostnameCmd(), exportCmd())
	return root.Execute()
}

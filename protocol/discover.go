package protocol

import (
	"errors"

	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/filter"
	"github.com/gridbase-inc/citysift/types"
	"github.com/spf13/cobra"
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover command",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := sourceConfig()
		if err != nil {
			return err
		}

		driver, err := abstract.NewDriver(cmd.Context(), config)
		if err != nil {
			return err
		}
		defer driver.Close(cmd.Context())

		cities, err := driver.Load(cmd.Context())
		if err != nil {
			return err
		}
		if len(cities) == 0 {
			return errors.New("no cities found in source")
		}

		types.LogStats(filter.Stats(cities))
		return nil
	},
}

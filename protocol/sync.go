package protocol

import (
	"time"

	"github.com/gridbase-inc/citysift/destination"
	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/filter"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils/logger"
	"github.com/spf13/cobra"
)

// syncCmd represents the sync command which runs the whole pipeline
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync command",
	Long:  `Sync reads the raw world-cities dataset from the source, reduces it country by country and writes the result to the destination`,
	Example: `
// Filter a local dataset into a directory:
citysift sync --source path/to/worldcities.json --destination path/to/output

// Typed source and destination configs:
citysift sync --source path/to/source.json --destination path/to/destination.json

// Without flags both paths are prompted for:
citysift sync
`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srcConfig, err := sourceConfig()
		if err != nil {
			return err
		}
		dstConfig, err := writerConfig()
		if err != nil {
			return err
		}

		start := time.Now()

		driver, err := abstract.NewDriver(cmd.Context(), srcConfig)
		if err != nil {
			return err
		}
		defer driver.Close(cmd.Context())

		// fail on an unwritable destination before loading anything
		writer, err := destination.NewWriter(cmd.Context(), dstConfig)
		if err != nil {
			return err
		}
		defer writer.Close(cmd.Context())

		cities, err := driver.Load(cmd.Context())
		if err != nil {
			return err
		}

		result := filter.Filter(cities)

		if err := writer.Write(cmd.Context(), result.Cities); err != nil {
			return err
		}
		// surface close errors; parquet finalizes its footer here
		if err := writer.Close(cmd.Context()); err != nil {
			return err
		}

		logger.Infof("Processed %d cities", len(cities))
		logger.Infof("Filtered to %d cities", len(result.Cities))
		logger.Infof("Countries: %d", result.Countries)
		logger.Infof("City-states (auto-select): %d", result.CityStates)

		types.LogSummary(&types.Summary{
			CitiesRead:  len(cities),
			CitiesKept:  len(result.Cities),
			Countries:   result.Countries,
			CityStates:  result.CityStates,
			DurationSec: time.Since(start).Seconds(),
		})
		return nil
	},
}

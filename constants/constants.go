package constants

import "time"

const (
	ParquetFileExt = "parquet"

	// OutputFileName is the fixed name of the filtered dataset written by the
	// json destination, matching what downstream city pickers bundle.
	OutputFileName = "filtered_world_cities.json"

	// MillionPlusThreshold classifies a city as major.
	MillionPlusThreshold = 1_000_000

	// MinCitiesPerCountry is the floor of kept cities for countries that lack
	// five million-plus entries (capitals are appended on top of it).
	MinCitiesPerCountry = 5

	DefaultRetryCount   = 3
	DefaultRetryTimeout = 2 * time.Second
)

// Viper keys shared between the root command and subcommands.
const (
	ConfigFolder    = "CONFIG_FOLDER"
	SourcePathKey   = "SOURCE_PATH"
	DestinationPath = "DESTINATION_PATH"
)

package types

type SourceType string

const (
	FileSource     SourceType = "FILE"
	MongoDBSource  SourceType = "MONGODB"
	PostgresSource SourceType = "POSTGRES"
)

type AdapterType string

const (
	JSON    AdapterType = "JSON"
	Parquet AdapterType = "PARQUET"
)

// SourceConfig wraps a driver-specific config with the driver selector.
type SourceConfig struct {
	Type         SourceType `json:"type"`
	DriverConfig any        `json:"driver"`
}

// WriterConfig wraps an adapter-specific config with the adapter selector.
type WriterConfig struct {
	Type          AdapterType `json:"type"`
	AdapterConfig any         `json:"adapter"`
}

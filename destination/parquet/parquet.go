package parquet

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/destination"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
	"github.com/gridbase-inc/citysift/utils/logger"
	pqgo "github.com/parquet-go/parquet-go"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
)

// cityRow flattens a filtered city for columnar storage. Raw json fields
// carry over as plain text and absent fields become nulls.
type cityRow struct {
	City          string  `parquet:"city"`
	CityASCII     string  `parquet:"city_ascii"`
	Lat           float64 `parquet:"lat"`
	Lng           float64 `parquet:"lng"`
	Country       string  `parquet:"country"`
	AdminName     *string `parquet:"admin_name,optional"`
	Population    *string `parquet:"population,optional"`
	ID            int64   `parquet:"id"`
	IsCityCountry bool    `parquet:"is_city_country"`
}

func toRow(city types.FilteredCity) cityRow {
	return cityRow{
		City:          city.Name,
		CityASCII:     city.NameASCII,
		Lat:           city.Lat,
		Lng:           city.Lng,
		Country:       city.Country,
		AdminName:     rawText(city.AdminName),
		Population:    rawText(city.Population),
		ID:            city.ID,
		IsCityCountry: city.IsCityCountry,
	}
}

// rawText unwraps quoted json strings and keeps any other token as its
// literal text, so "37732000" and 37732000 both land as the same column value.
func rawText(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			return &text
		}
	}
	text := string(trimmed)
	return &text
}

// Parquet writes the filtered dataset as one snappy compressed parquet file
// with a timestamped name, so repeated runs never clobber each other.
type Parquet struct {
	config      *Config
	basePath    string
	closed      bool
	parquetFile source.ParquetFile
	writer      *pqgo.GenericWriter[cityRow]
}

func (p *Parquet) GetConfigRef() destination.Config {
	p.config = &Config{}
	return p.config
}

func (p *Parquet) Spec() any {
	return Config{}
}

func (p *Parquet) Type() string {
	return string(types.Parquet)
}

func (p *Parquet) Check(_ context.Context) error {
	if err := p.config.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %s", err)
	}

	p.basePath = utils.ExpandHomeDir(p.config.Path)
	if err := os.MkdirAll(p.basePath, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create local path: %s", err)
	}

	return nil
}

func (p *Parquet) Write(_ context.Context, cities []types.FilteredCity) error {
	filePath := filepath.Join(p.basePath, utils.TimestampedFileName(constants.ParquetFileExt))

	pqFile, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file writer: %s", err)
	}
	p.parquetFile = pqFile
	p.writer = pqgo.NewGenericWriter[cityRow](pqFile, pqgo.Compression(&pqgo.Snappy))

	rows := make([]cityRow, 0, len(cities))
	for _, city := range cities {
		rows = append(rows, toRow(city))
	}

	if _, err := p.writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write rows: %s", err)
	}

	logger.Infof("Filtered data saved to %s", filePath)
	return nil
}

func (p *Parquet) Close(_ context.Context) error {
	if p.closed || p.writer == nil {
		return nil
	}
	p.closed = true

	// the writer flushes its footer into the file, so it must close first;
	// the file still closes on a writer failure to release the handle
	return utils.ErrExecSequential(
		utils.ErrExecFormat("failed to close writer: %s", p.writer.Close),
		utils.ErrExecFormat("failed to close parquet file: %s", p.parquetFile.Close),
	)
}

func init() {
	destination.RegisteredWriters[types.Parquet] = func() destination.Writer {
		return new(Parquet)
	}
}

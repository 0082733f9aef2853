package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
)

// File reads the dataset from a local worldcities.json or worldcities.csv
// export (SimpleMaps layout).
type File struct {
	config *Config
	path   string
	format Format
}

func (f *File) GetConfigRef() abstract.Config {
	f.config = &Config{}
	return f.config
}

func (f *File) Spec() any {
	return Config{}
}

func (f *File) Type() string {
	return string(types.FileSource)
}

func (f *File) Setup(_ context.Context) error {
	f.path = utils.ExpandHomeDir(f.config.Path)
	info, err := os.Stat(f.path)
	if err != nil {
		return fmt.Errorf("file not found: %s", f.path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", f.path)
	}

	f.format = f.config.Format
	if f.format == "" {
		f.format = utils.Ternary(strings.EqualFold(filepath.Ext(f.path), ".csv"), FormatCSV, FormatJSON).(Format)
	}

	return nil
}

func (f *File) Load(_ context.Context) ([]types.City, error) {
	if f.format == FormatCSV {
		return f.loadCSV()
	}
	return f.loadJSON()
}

func (f *File) Close(_ context.Context) error {
	return nil
}

func (f *File) loadJSON() ([]types.City, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %s", f.path, err)
	}

	var cities []types.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("%s is not a json array of city records: %s", f.path, err)
	}

	return cities, nil
}

func (f *File) loadCSV() ([]types.City, error) {
	handle, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %s", f.path, err)
	}
	defer handle.Close()

	reader := csv.NewReader(handle)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header from %s: %s", f.path, err)
	}
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}

	var cities []types.City
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row from %s: %s", f.path, err)
		}
		cities = append(cities, cityFromRow(columns, row))
	}

	return cities, nil
}

// cityFromRow maps one csv row by header name. Numeric cells degrade to zero
// when malformed; optional cells missing a column stay absent, while present
// but empty cells keep an empty string so they still count as set fields.
func cityFromRow(columns map[string]int, row []string) types.City {
	cell := func(name string) (string, bool) {
		idx, found := columns[name]
		if !found || idx >= len(row) {
			return "", false
		}
		return row[idx], true
	}
	rawCell := func(name string) json.RawMessage {
		text, found := cell(name)
		if !found {
			return nil
		}
		raw, _ := json.Marshal(text)
		return raw
	}

	name, _ := cell("city")
	nameASCII, _ := cell("city_ascii")
	country, _ := cell("country")
	idText, _ := cell("id")
	latText, _ := cell("lat")
	lngText, _ := cell("lng")

	id, _ := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	lat, _ := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	lng, _ := strconv.ParseFloat(strings.TrimSpace(lngText), 64)

	return types.City{
		ID:         id,
		Name:       name,
		NameASCII:  nameASCII,
		Lat:        lat,
		Lng:        lng,
		Country:    country,
		AdminName:  rawCell("admin_name"),
		Capital:    rawCell("capital"),
		Population: rawCell("population"),
	}
}

func init() {
	abstract.RegisteredDrivers[types.FileSource] = func() abstract.Driver {
		return new(File)
	}
}

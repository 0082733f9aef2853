package json

import (
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
)

// JSON writes the filtered dataset to filtered_world_cities.json under the
// configured directory. Output keeps the upstream dataset's formatting: two
// space indent and unescaped non-ascii text.
type JSON struct {
	config *Config
	path   string
}

func (j *JSON) GetConfigRef() destination.Config {
	j.config = &Config{}
	return j.config
}

func (j *JSON) Spec() any {
	return Config{}
}

func (j *JSON) Type() string {
	return string(types.JSON)
}

func (j *JSON) Check(_ context.Context) error {
	if err := j.config.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %s", err)
	}

	dir := utils.ExpandHomeDir(j.config.Path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	// Create a temporary file in the specified directory
	tempFile, err := os.CreateTemp(dir, "temporary-*.json")
	if err != nil {
		return err
	}

	// Write some content to the file
	if _, err := tempFile.Write([]byte("{}")); err != nil {
		return err
	}

	// Close the file
	if err := tempFile.Close(); err != nil {
		return err
	}

	// Delete the temporary file
	if err := os.Remove(tempFile.Name()); err != nil {
		return err
	}

	j.path = filepath.Join(dir, constants.OutputFileName)
	return nil
}

func (j *JSON) Write(_ context.Context, cities []types.FilteredCity) error {
	file, err := os.Create(j.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %s", j.path, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cities); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %s", j.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %s", j.path, err)
	}

	logger.Infof("Filtered data saved to %s", j.path)
	return nil
}

func (j *JSON) Close(_ context.Context) error {
	return nil
}

func init() {
	destination.RegisteredWriters[types.JSON] = func() destination.Writer {
		return new(JSON)
	}
}

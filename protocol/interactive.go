package protocol

import (
	"fmt"
	"strings"

	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

// sourcePath returns the --source value, the SOURCE_PATH environment variable
// or, as the classic workflow did, a prompt for the dataset path.
func sourcePath() (string, error) {
	if sourceConfigPath != "not-set" {
		return sourceConfigPath, nil
	}
	if env := viper.GetString(constants.SourcePathKey); env != "" {
		return env, nil
	}
	if noPrompt {
		return "", fmt.Errorf("--source not passed")
	}

	entered, err := pterm.DefaultInteractiveTextInput.Show("Enter the path to worldcities.json (using Simple Maps data)")
	if err != nil {
		return "", fmt.Errorf("failed to read input: %s", err)
	}
	return strings.TrimSpace(entered), nil
}

func destinationPath() (string, error) {
	if destinationConfigPath != "not-set" {
		return destinationConfigPath, nil
	}
	if env := viper.GetString(constants.DestinationPath); env != "" {
		return env, nil
	}
	if noPrompt {
		return "", fmt.Errorf("--destination not passed")
	}

	entered, err := pterm.DefaultInteractiveTextInput.Show("Enter the directory to save filtered_world_cities.json")
	if err != nil {
		return "", fmt.Errorf("failed to read input: %s", err)
	}
	return strings.TrimSpace(entered), nil
}

// resolveSourceConfig reads path as a source envelope; anything that is not
// one selects the file driver with path as the dataset itself.
func resolveSourceConfig(path string) *types.SourceConfig {
	config := &types.SourceConfig{}
	if err := utils.UnmarshalFile(path, config); err == nil && config.Type != "" {
		return config
	}

	return &types.SourceConfig{
		Type:         types.FileSource,
		DriverConfig: map[string]any{"path": path},
	}
}

// resolveWriterConfig reads path as a destination envelope; anything that is
// not one selects the json writer with path as the output directory.
func resolveWriterConfig(path string) *types.WriterConfig {
	config := &types.WriterConfig{}
	if err := utils.UnmarshalFile(path, config); err == nil && config.Type != "" {
		return config
	}

	return &types.WriterConfig{
		Type:          types.JSON,
		AdapterConfig: map[string]any{"path": path},
	}
}

func sourceConfig() (*types.SourceConfig, error) {
	path, err := sourcePath()
	if err != nil {
		return nil, err
	}
	return resolveSourceConfig(path), nil
}

func writerConfig() (*types.WriterConfig, error) {
	path, err := destinationPath()
	if err != nil {
		return nil, err
	}
	return resolveWriterConfig(path), nil
}

package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/utils"
	"github.com/gridbase-inc/citysift/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sourceConfigPath      string
	destinationConfigPath string
	noPrompt              bool

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "citysift",
	Short: "root command",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		viper.AutomaticEnv()
		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		if sourceConfigPath != "not-set" {
			viper.Set(constants.ConfigFolder, filepath.Dir(sourceConfigPath))
		}

		// logger uses CONFIG_FOLDER
		logger.Init()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'citysift --help' to display usage guide", args[0])
		}

		return nil
	},
}

func init() {
	commands = append(commands, specCmd, checkCmd, discoverCmd, syncCmd)
	RootCmd.AddCommand(commands...)

	RootCmd.PersistentFlags().StringVarP(&sourceConfigPath, "source", "", "not-set", "Source config or the worldcities.json path itself")
	RootCmd.PersistentFlags().StringVarP(&destinationConfigPath, "destination", "", "not-set", "Destination config or the output directory itself")
	RootCmd.PersistentFlags().BoolVarP(&noPrompt, "no-prompt", "", false, "(Optional) Fail instead of prompting when a path is missing")

	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}

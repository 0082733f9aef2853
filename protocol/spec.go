package protocol

import (
	"fmt"
	"strings"

	"github.com/gridbase-inc/citysift/destination"
	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
	"github.com/spf13/cobra"
)

var specType string

// specCmd represents the spec command
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "spec command",
	RunE: func(_ *cobra.Command, _ []string) error {
		selector := strings.ToUpper(specType)

		sources := map[string]interface{}{}
		for sourceType, newfunc := range abstract.RegisteredDrivers {
			if selector != "" && selector != string(sourceType) {
				continue
			}
			shape := map[string]interface{}{}
			if err := utils.Unmarshal(newfunc().Spec(), &shape); err != nil {
				return fmt.Errorf("failed to reflect %s source config: %s", sourceType, err)
			}
			sources[string(sourceType)] = shape
		}

		destinations := map[string]interface{}{}
		for adapterType, newfunc := range destination.RegisteredWriters {
			if selector != "" && selector != string(adapterType) {
				continue
			}
			shape := map[string]interface{}{}
			if err := utils.Unmarshal(newfunc().Spec(), &shape); err != nil {
				return fmt.Errorf("failed to reflect %s destination config: %s", adapterType, err)
			}
			destinations[string(adapterType)] = shape
		}

		if selector != "" && len(sources) == 0 && len(destinations) == 0 {
			return fmt.Errorf("unknown type [%s]", specType)
		}

		types.LogSpec(map[string]interface{}{
			"sources":      sources,
			"destinations": destinations,
		})
		return nil
	},
}

func init() {
	specCmd.Flags().StringVarP(&specType, "type", "", "", "(Optional) Limit output to one source or destination type")
}

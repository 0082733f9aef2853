/*
 * Copyright 2026 Citysift By Gridbase
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package protocol

import (
	"fmt"

	"github.com/gridbase-inc/citysift/destination"
	"github.com/gridbase-inc/citysift/drivers/abstract"
	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if destinationConfigPath == "not-set" && sourceConfigPath == "not-set" {
			return fmt.Errorf("no source config or destination config provided")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		probes := []func() error{}
		if sourceConfigPath != "not-set" {
			probes = append(probes, func() error {
				driver, err := abstract.NewDriver(cmd.Context(), resolveSourceConfig(sourceConfigPath))
				if err != nil {
					return err
				}
				return driver.Close(cmd.Context())
			})
		}
		if destinationConfigPath != "not-set" {
			probes = append(probes, func() error {
				writer, err := destination.NewWriter(cmd.Context(), resolveWriterConfig(destinationConfigPath))
				if err != nil {
					return err
				}
				return writer.Close(cmd.Context())
			})
		}

		if err := utils.ErrExec(probes...); err != nil {
			types.LogStatus(types.ConnectionFailed, err.Error())
			return
		}

		// log success
		types.LogStatus(types.ConnectionSucceed, "")
	},
}

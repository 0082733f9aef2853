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

package abstract

import (
	"context"
	"fmt"

	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
)

type NewFunc func() Driver

// RegisteredDrivers is populated by driver packages at import time.
var RegisteredDrivers = map[types.SourceType]NewFunc{}

type Config interface {
	Validate() error
}

// Driver reads the raw world-cities dataset out of one backing store.
type Driver interface {
	// GetConfigRef returns the pointer the envelope config is unmarshaled into.
	GetConfigRef() Config
	// Spec returns an example config for the spec command.
	Spec() any
	Type() string
	// Setup opens the connection described by the config.
	//
	// Note: Setup must run before Load; they are composed in NewDriver.
	Setup(ctx context.Context) error
	// Load reads every city record in source order. Order matters: grouping
	// downstream follows first encounter.
	Load(ctx context.Context) ([]types.City, error)
	Close(ctx context.Context) error
}

// NewDriver resolves the configured source and opens its connection after
// the config validates.
func NewDriver(ctx context.Context, config *types.SourceConfig) (Driver, error) {
	newfunc, found := RegisteredDrivers[config.Type]
	if !found {
		return nil, fmt.Errorf("invalid source type has been passed [%s]", config.Type)
	}

	driver := newfunc()
	ref := driver.GetConfigRef()
	if err := utils.Unmarshal(config.DriverConfig, ref); err != nil {
		return nil, err
	}
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s source config: %s", driver.Type(), err)
	}

	if err := driver.Setup(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect source: %s", err)
	}

	return driver, nil
}

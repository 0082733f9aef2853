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

package destination

import (
	"context"

	"github.com/gridbase-inc/citysift/types"
)

type Config interface {
	Validate() error
}

type Writer interface {
	GetConfigRef() Config
	Spec() any
	Type() string
	// Check tests that the destination is writable before any city is filtered
	//
	// Note: Check runs before Write; they're composed in NewWriter
	Check(ctx context.Context) error
	// Write persists the full filtered dataset in one pass
	Write(ctx context.Context, cities []types.FilteredCity) error
	Close(ctx context.Context) error
}

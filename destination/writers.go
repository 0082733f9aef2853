package destination

import (
	"context"
	"fmt"

	"github.com/gridbase-inc/citysift/types"
	"github.com/gridbase-inc/citysift/utils"
)

type NewFunc func() Writer

var RegisteredWriters = map[types.AdapterType]NewFunc{}

// NewWriter resolves the adapter for the given config and checks the
// destination is usable before returning it
func NewWriter(ctx context.Context, config *types.WriterConfig) (Writer, error) {
	newfunc, found := RegisteredWriters[config.Type]
	if !found {
		return nil, fmt.Errorf("invalid destination type has been passed [%s]", config.Type)
	}

	adapter := newfunc()
	if err := utils.Unmarshal(config.AdapterConfig, adapter.GetConfigRef()); err != nil {
		return nil, err
	}

	if err := adapter.Check(ctx); err != nil {
		return nil, fmt.Errorf("failed to test destination: %s", err)
	}

	return adapter, nil
}

package parquet

import (
	"github.com/gridbase-inc/citysift/utils"
)

type Config struct {
	Path string `json:"path" validate:"required"` // Directory for the parquet output; ~ expands to the home directory
}

func (c *Config) Validate() error {
	return utils.Validate(c)
}

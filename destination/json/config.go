package json

import (
	"github.com/gridbase-inc/citysift/utils"
)

type Config struct {
	Path string `json:"path" validate:"required"` // Directory that receives filtered_world_cities.json; ~ expands to the home directory
}

func (c *Config) Validate() error {
	return utils.Validate(c)
}

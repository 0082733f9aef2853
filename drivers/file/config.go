package file

import (
	"fmt"

	"github.com/gridbase-inc/citysift/utils"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

type Config struct {
	Path   string `json:"path" validate:"required"` // Dataset file; ~ expands to the home directory
	Format Format `json:"format,omitempty"`         // json or csv; inferred from the extension when empty
}

func (c *Config) Validate() error {
	if err := utils.Validate(c); err != nil {
		return err
	}

	switch c.Format {
	case "", FormatJSON, FormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported file format [%s]", c.Format)
	}
}

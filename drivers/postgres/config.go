package postgres

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gridbase-inc/citysift/constants"
)

type Config struct {
	Connection *url.URL `json:"-"`

	Host       string `json:"host"`     // Database host address
	Port       int    `json:"port"`     // Listening port, defaults to 5432
	Database   string `json:"database"` // Database holding the cities table
	Username   string `json:"username"`
	Password   string `json:"password"`
	SSLMode    string `json:"ssl_mode,omitempty"` // e.g. disable, require, verify-full
	Table      string `json:"table,omitempty"`    // Cities table, defaults to world_cities
	RetryCount int    `json:"backoff_retry_count,omitempty"`
}

func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("empty host name")
	} else if strings.Contains(c.Host, "https") || strings.Contains(c.Host, "http") {
		return fmt.Errorf("host should not contain http or https")
	}

	// Set default values if not provided
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: must be between 1 and 65535")
	}
	if c.Table == "" {
		c.Table = "world_cities"
	}
	if c.RetryCount <= 0 {
		c.RetryCount = constants.DefaultRetryCount
	}

	// construct the connection string
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", url.QueryEscape(c.Username), url.QueryEscape(c.Password), c.Host, c.Port, url.QueryEscape(c.Database))
	parsed, err := url.Parse(connStr)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %s", err)
	}

	query := parsed.Query()
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
	query.Add("sslmode", c.SSLMode)

	parsed.RawQuery = query.Encode()
	c.Connection = parsed

	return nil
}

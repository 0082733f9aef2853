package mongodb

import (
	"fmt"
	"strings"

	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/utils"
)

type Config struct {
	Hosts          []string `json:"hosts" validate:"required,min=1"` // MongoDB hosts (with port)
	Database       string   `json:"database" validate:"required"`
	Collection     string   `json:"collection" validate:"required"` // Collection holding the raw city documents
	AuthDB         string   `json:"authdb,omitempty"`               // Authentication database, defaults to admin
	Username       string   `json:"username,omitempty"`
	Password       string   `json:"password,omitempty"`
	ReplicaSet     string   `json:"replica_set,omitempty"`
	ReadPreference string   `json:"read_preference,omitempty"` // e.g. primary, secondaryPreferred
	Srv            bool     `json:"srv,omitempty"`             // Whether to use DNS SRV
	RetryCount     int      `json:"backoff_retry_count,omitempty"`
}

func (c *Config) URI() string {
	connectionPrefix := "mongodb"
	options := fmt.Sprintf("?authSource=%s", c.AuthDB)
	if c.Srv {
		connectionPrefix = "mongodb+srv"
	}

	if c.ReplicaSet != "" {
		// configurations for a replica set
		if c.ReadPreference == "" {
			c.ReadPreference = "secondaryPreferred"
		}
		options = fmt.Sprintf("%s&replicaSet=%s&readPreference=%s", options, c.ReplicaSet, c.ReadPreference)
	}

	auth := ""
	if c.Username != "" {
		auth = utils.Ternary(c.Password != "", c.Username+":"+c.Password+"@", c.Username+"@").(string)
	}

	return fmt.Sprintf(
		"%s://%s%s/%s",
		connectionPrefix, auth, strings.Join(c.Hosts, ","), options,
	)
}

func (c *Config) Validate() error {
	// Set default values if not provided
	if c.AuthDB == "" {
		c.AuthDB = "admin"
	}
	if c.RetryCount <= 0 {
		c.RetryCount = constants.DefaultRetryCount
	}

	return utils.Validate(c)
}

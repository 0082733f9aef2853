package main

import (
	"os"

	_ "github.com/gridbase-inc/citysift/destination/json"    // registering the json writer
	_ "github.com/gridbase-inc/citysift/destination/parquet" // registering the parquet writer
	_ "github.com/gridbase-inc/citysift/drivers/file"        // registering the file source
	_ "github.com/gridbase-inc/citysift/drivers/mongodb"     // registering the mongodb source
	_ "github.com/gridbase-inc/citysift/drivers/postgres"    // registering the postgres source
	"github.com/gridbase-inc/citysift/protocol"
	"github.com/gridbase-inc/citysift/utils/logger"
	"github.com/gridbase-inc/citysift/utils/safego"
)

func main() {
	defer safego.Recovery(true)

	// Execute the root command
	if err := protocol.RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}

	os.Exit(0)
}

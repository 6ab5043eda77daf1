// Command graphserver runs the REST API over the graph store.
package main

import (
	"log"

	"reqgraph.dev/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

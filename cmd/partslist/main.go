// Command partslist compares, merges and intersects parts list exports.
package main

import "github.com/mesh-intelligence/partslist/internal/cli"

func main() {
	cli.Execute()
}

// SPDX-License-Identifier: MIT

// Command beaconreg registers 3-D beacon scanners into one coordinate frame.
package main

import "github.com/katalvlaran/beaconreg/internal/cli"

func main() {
	cli.Execute()
}

// SPDX-License-Identifier: MIT

// Command vecmat runs the vector/matrix demonstration.
package main

import "github.com/katalvlaran/vecmat/internal/cli"

func main() {
	cli.Execute()
}

// cachesim simulates cache eviction policies against synthetic access
// sequences and reports aggregated hit ratios.
package main

import "github.com/cachesim/cachesim/cmd"

func main() {
	cmd.Execute()
}

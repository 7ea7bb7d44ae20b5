// SPDX-License-Identifier: MIT

// Command geoct transforms coordinate streams through transform pipelines.
//
//	geoct providers
//	geoct transform --pipeline merc.toml --input points.csv --output out.csv
//
// Points are CSV rows, one ordinate per column. Pipelines are TOML files in
// the format of package pipeline; the Proj4 provider of package srs is
// registered next to the built-in providers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package main provides the discrete CLI: count, rank and unrank positions
// of the spaces in the catalog.
//
//	discrete count 'power-set(pair)' 4
//	discrete pos context '[3, 3]' 7
//	discrete index homotopy '{level: 1, dim: 3}' '{path: [{point: 0}, {point: 2}]}'
//	discrete list --limit 5 permutation 4
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "discrete:", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

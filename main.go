// Package main is the entry point for the poolrank CLI tool, which tracks
// pool league match results and generates win-rate leaderboards.
package main

import "github.com/pable/poolrank/cmd"

func main() {
	cmd.Execute()
}

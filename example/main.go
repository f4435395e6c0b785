// Package main is the scg-expected demo program.
//
// Run `go run ./example root 16` to see a success, `root -- -4` for the error branch,
// and `errno list` for the platform error-code catalogue. Set SCG_DEBUG=1 for debug logs.
package main

import "github.com/next-trace/scg-expected/internal/cli"

func main() {
	cli.Execute()
}

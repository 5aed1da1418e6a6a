// Package main is the roman command line tool.
package main

import "github.com/katalvlaran/lvroman/internal/cli"

func main() {
	cli.Execute()
}

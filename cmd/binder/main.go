// Package main provides the binder CLI.
package main

import "github.com/mesh-intelligence/binder/internal/cli"

func main() {
	cli.Execute()
}

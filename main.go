// Package main is the entry point for the askdb CLI application.
// It lets you query your database in plain language through the
// askdb assistant service.
package main

import (
	"askdb/cli/cmd"
)

func main() {
	cmd.Execute()
}

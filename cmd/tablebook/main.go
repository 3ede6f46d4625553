// Command tablebook manages a local SQLite store of restaurant reservations.
package main

import (
	"os"

	"github.com/roach88/tablebook/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}

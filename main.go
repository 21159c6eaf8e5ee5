package main

import (
	"os"

	"chantrack/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

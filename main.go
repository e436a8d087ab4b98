package main

import (
	"os"

	"j2e/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

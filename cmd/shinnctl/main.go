package main

import (
	"os"

	"ShinnPerfume/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

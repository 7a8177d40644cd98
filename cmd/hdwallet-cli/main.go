package main

import (
	"os"

	"hdwallet-core/cmd/hdwallet-cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

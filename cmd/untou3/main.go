// SPDX-License-Identifier: MIT

// Command untou3 reduces U(N) irreps into U(3) irreps.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/untou3/cmd"
)

func main() {
	_ = godotenv.Load(".env")

	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

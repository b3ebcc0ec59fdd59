// apcheck - APCA contrast checker
//
// apcheck scores the perceptual contrast between a text colour and a
// background colour and checks it against a minimum Lc value.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/apcheck/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

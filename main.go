// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/epigraphia/liberalitas/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}

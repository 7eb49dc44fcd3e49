// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package cmdapi holds the puresql commands used to build the puresql
// CLI distribution.
package cmdapi

import (
	"github.com/spf13/cobra"
)

// Root represents the root command when called without any
// subcommands.
var Root = &cobra.Command{
	Use:          "puresql",
	Short:        "An embedded relational query engine.",
	SilenceUsage: true,
}

func init() {
	Root.AddCommand(demoCmd)
}

// Execute runs the root command, returning whatever error a subcommand
// surfaced.
func Execute() error {
	return Root.Execute()
}

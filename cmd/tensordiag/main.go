// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tensordiag builds a tensor, resolves a diagonal selector
// against it, and reports the resolved index representation and
// the selected values.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the version of tensordiag, set at build time.
var Version = "v0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tensordiag",
		Short:         "Resolve diagonal selectors on n-dimensional tensors",
		Long:          `tensordiag builds a float64 tensor from a TOML config and flags, and resolves a diagonal selector against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	root.AddCommand(newResolveCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tensordiag version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tensordiag", Version)
		},
	}
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("tensordiag:", err)
		os.Exit(1)
	}
}

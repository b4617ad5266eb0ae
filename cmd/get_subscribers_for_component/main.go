// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, spgerrors.ErrUsage) {
			fmt.Fprintf(stderr, "\n%s", rootCmd.UsageString())
		}
		return spgerrors.ExitCode(err)
	}
	return 0
}

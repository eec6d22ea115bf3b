// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
)

func main() {
	rc := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rc.Execute(); err != nil {
		os.Exit(1)
	}
}

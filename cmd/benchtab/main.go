// Package main provides benchtab, a tool that turns benchmark results into
// normalized markdown comparison reports.
package main

import (
	"fmt"
	"os"

	"benchtab/pkg/ux"
)

const version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ux.Styles.Error.Render(fmt.Sprintf("❌ %v", err)))
		os.Exit(1)
	}
}

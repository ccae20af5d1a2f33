// ScaleDown - model-aware prompt optimization.
package main

import (
	"os"

	"github.com/scaledown-ai/scaledown/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

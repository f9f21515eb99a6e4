// Cacheforge - context window analysis for agent workspaces
package main

import (
	"os"

	"github.com/cacheforge-ai/cacheforge-skills/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

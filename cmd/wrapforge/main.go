// Command wrapforge generates a php://filter stream-filter chain URI that,
// when read by a target runtime, emits a chosen prefix and suffix around a
// slice of a local file's contents.
package main

import (
	"os"

	"github.com/projectdiscovery/utils/errkit"

	"wrapforge/internal/cli"
	"wrapforge/internal/utils/logger"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		logger.LogError("%v", err)

		if errkit.FromError(err).Kind() == cli.ErrKindArgument {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

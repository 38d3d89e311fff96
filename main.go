// Package main is the entry point for the tinct application.
package main

import (
	"github.com/samber/lo"
	"github.com/tinct-cli/tinct/cmd"
	"github.com/tinct-cli/tinct/config"
	"github.com/tinct-cli/tinct/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

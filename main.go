// Package main is the entry point for stackr.
package main

import (
	"github.com/samber/lo"
	"github.com/stackr-cli/stackr/cmd"
	"github.com/stackr-cli/stackr/config"
	"github.com/stackr-cli/stackr/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

// Package main is the entry point for the anihelper application.
package main

import (
	"github.com/anihelper/anihelper/cmd"
	"github.com/anihelper/anihelper/config"
	"github.com/anihelper/anihelper/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

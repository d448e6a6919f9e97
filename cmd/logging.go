package cmd

import (
	"github.com/urfave/cli"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/log"
)

var logger = log.New("textool")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

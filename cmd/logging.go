package cmd

import (
	"github.com/Boothwhack/ray-tracing/log"
	"github.com/urfave/cli"
)

var logger = log.New("ray-tracing")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

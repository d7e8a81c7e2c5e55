package main

import (
	"os"

	"github.com/Boothwhack/ray-tracing/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	renderFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 512,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 512,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "samples",
			Value: 8,
			Usage: "anti-aliasing samples per pixel (1, 2, 4 or 8)",
		},
		cli.IntFlag{
			Name:  "bounces",
			Value: 50,
			Usage: "max bounces per light path",
		},
		cli.IntFlag{
			Name:  "lines-per-chunk",
			Value: 0,
			Usage: "pixel rows per unit of work (0 selects the default)",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "render worker count (0 selects one per CPU)",
		},
		cli.StringFlag{
			Name:  "scene",
			Value: "cover",
			Usage: "prefab scene to render",
		},
	}

	app := cli.NewApp()
	app.Name = "ray-tracing"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-scenes",
			Usage:  "list built-in prefab scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame and export it as a png image.`,
					Flags: append(renderFlags, cli.StringFlag{
						Name:  "out, o",
						Value: "frame.png",
						Usage: "image filename for the rendered frame",
					}),
					Action: cmd.RenderFrame,
				},
				{
					Name:        "interactive",
					Usage:       "render interactive view of the scene",
					Description: `Present the scene in a window and re-render whenever the camera moves.`,
					Flags:       renderFlags,
					Action:      cmd.RenderInteractive,
				},
			},
		},
	}

	app.Run(os.Args)
}

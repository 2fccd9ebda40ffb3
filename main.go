package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
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
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one frame of a built-in scene or a JSON scene file and save it as a PNG.

The scene flag accepts a built-in scene id (see the scenes command) or a path
to a .json scene description. Width and height override the scene's camera
resolution when both are set.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene id or path to a .json scene file",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 0,
					Usage: "frame width (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 0,
					Usage: "frame height (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 0,
					Usage: "field of view in degrees (0 = scene default)",
				},
				cli.StringFlag{
					Name:  "move",
					Value: "",
					Usage: "translate the camera by x,y,z",
				},
				cli.Float64Flag{
					Name:  "yaw",
					Value: 0,
					Usage: "rotate the camera around its up vector, in degrees",
				},
				cli.Float64Flag{
					Name:  "pitch",
					Value: 0,
					Usage: "rotate the camera around its right vector, in degrees",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 5,
					Usage: "maximum recursion depth for reflections",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of parallel workers (0 = CPU count)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "seed for glossy reflection sampling",
				},
				cli.IntFlag{
					Name:  "debug-every",
					Value: 0,
					Usage: "record traced rays for every Nth pixel of the middle row (0 = off)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: renderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for .json scene files",
				},
			},
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

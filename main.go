package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "textool"
	app.Usage = "inspect GPU texture formats and texel sizes"
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
			Name:  "formats",
			Usage: "list the supported texture parameter catalogs",
			Description: `
Print every texture type, internal format, pixel format, pixel type, wrap
mode and filter mode known to the engine together with the GL constant value
behind each entry.`,
			Action: cmd.ListFormats,
		},
		{
			Name:      "texel-size",
			Usage:     "compute the byte footprint of a single texel",
			ArgsUsage: "pixel-format pixel-type",
			Description: `
Compute component count, component size and total byte footprint for a texel
with the given pixel format and type, e.g. "texel-size RGBA UByte".`,
			Action: cmd.TexelSize,
		},
		{
			Name:      "probe",
			Usage:     "derive default texture parameters for image files",
			ArgsUsage: "image1.png image2.jpg ...",
			Description: `
Decode only the header of each image (local path or http/https URL) and
print its dimensions, channel count and the default pixel/internal formats
the engine would pick when uploading it.`,
			Action: cmd.ProbeImages,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

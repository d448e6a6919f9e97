package cmd

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/texture"
)

// TexelSize computes the byte footprint of a single texel for a pixel
// format/type pair given by name.
func TexelSize(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 2 {
		return errors.New("texel-size requires a pixel format and a pixel type argument")
	}

	format, err := texture.ParsePixelFormat(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	pixelType, err := texture.ParsePixelType(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	logger.Noticef(
		"%s/%s: %d component(s) x %d byte(s) = %d byte(s) per texel",
		format, pixelType,
		texture.TexelComponentCount(format),
		texture.TexelComponentSize(pixelType),
		texture.TexelSize(format, pixelType),
	)
	return nil
}

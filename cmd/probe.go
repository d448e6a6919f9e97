package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/asset"
)

// ProbeImages probes the headers of one or more image files or URLs and
// prints the default texture parameters for uploading each of them.
func ProbeImages(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("probe requires at least one image path or url")
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Image", "Container", "Size", "Channels", "Pixel format", "Internal format", "Pixel type", "Texel bytes", "Upload bytes"})

	for _, arg := range ctx.Args() {
		res, err := asset.NewResource(arg, nil)
		if err != nil {
			return err
		}
		info, err := asset.ProbeImage(res)
		res.Close()
		if err != nil {
			return err
		}

		table.Append([]string{
			info.Path,
			info.Container,
			fmt.Sprintf("%dx%d", info.Width, info.Height),
			fmt.Sprintf("%d", info.Channels),
			info.PixelFormat.String(),
			info.InternalFormat.String(),
			info.PixelType.String(),
			fmt.Sprintf("%d", info.TexelSize()),
			fmt.Sprintf("%d", info.UploadSize()),
		})
	}
	table.Render()

	logger.Noticef("image probe results\n%s", buf.String())
	return nil
}

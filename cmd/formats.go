package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/texture"
)

type catalogRow struct {
	name  string
	value uint32
}

// ListFormats prints the texture parameter catalogs together with the GL
// constant value behind each entry.
func ListFormats(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	writeCatalog(&buf, "Texture type", []catalogRow{
		{texture.Type1D.String(), uint32(texture.Type1D)},
		{texture.Type2D.String(), uint32(texture.Type2D)},
		{texture.Type3D.String(), uint32(texture.Type3D)},
		{texture.TypeCubemap.String(), uint32(texture.TypeCubemap)},
		{texture.Type2DMultisample.String(), uint32(texture.Type2DMultisample)},
	})
	writeCatalog(&buf, "Internal format", []catalogRow{
		{texture.InternalFormatUnknown.String(), uint32(texture.InternalFormatUnknown)},
		{texture.InternalFormatDepth.String(), uint32(texture.InternalFormatDepth)},
		{texture.InternalFormatDepthStencil.String(), uint32(texture.InternalFormatDepthStencil)},
		{texture.InternalFormatR8.String(), uint32(texture.InternalFormatR8)},
		{texture.InternalFormatR16.String(), uint32(texture.InternalFormatR16)},
		{texture.InternalFormatRG8.String(), uint32(texture.InternalFormatRG8)},
		{texture.InternalFormatRGB8.String(), uint32(texture.InternalFormatRGB8)},
		{texture.InternalFormatSRGB8.String(), uint32(texture.InternalFormatSRGB8)},
		{texture.InternalFormatRGB10.String(), uint32(texture.InternalFormatRGB10)},
		{texture.InternalFormatRGB16.String(), uint32(texture.InternalFormatRGB16)},
		{texture.InternalFormatRGB32F.String(), uint32(texture.InternalFormatRGB32F)},
		{texture.InternalFormatRGBA8.String(), uint32(texture.InternalFormatRGBA8)},
		{texture.InternalFormatSRGBA8.String(), uint32(texture.InternalFormatSRGBA8)},
		{texture.InternalFormatRGBA16.String(), uint32(texture.InternalFormatRGBA16)},
		{texture.InternalFormatRGBA32F.String(), uint32(texture.InternalFormatRGBA32F)},
	})
	writeCatalog(&buf, "Pixel format", []catalogRow{
		{texture.PixelFormatUnknown.String(), uint32(texture.PixelFormatUnknown)},
		{texture.PixelFormatRed.String(), uint32(texture.PixelFormatRed)},
		{texture.PixelFormatRG.String(), uint32(texture.PixelFormatRG)},
		{texture.PixelFormatRGB.String(), uint32(texture.PixelFormatRGB)},
		{texture.PixelFormatSRGB.String(), uint32(texture.PixelFormatSRGB)},
		{texture.PixelFormatBGR.String(), uint32(texture.PixelFormatBGR)},
		{texture.PixelFormatRGBA.String(), uint32(texture.PixelFormatRGBA)},
		{texture.PixelFormatBGRA.String(), uint32(texture.PixelFormatBGRA)},
		{texture.PixelFormatDepth.String(), uint32(texture.PixelFormatDepth)},
		{texture.PixelFormatDepthStencil.String(), uint32(texture.PixelFormatDepthStencil)},
	})
	writeCatalog(&buf, "Pixel type", []catalogRow{
		{texture.PixelTypeUByte.String(), uint32(texture.PixelTypeUByte)},
		{texture.PixelTypeByte.String(), uint32(texture.PixelTypeByte)},
		{texture.PixelTypeUShort.String(), uint32(texture.PixelTypeUShort)},
		{texture.PixelTypeShort.String(), uint32(texture.PixelTypeShort)},
		{texture.PixelTypeUInt.String(), uint32(texture.PixelTypeUInt)},
		{texture.PixelTypeInt.String(), uint32(texture.PixelTypeInt)},
		{texture.PixelTypeFloat.String(), uint32(texture.PixelTypeFloat)},
	})
	writeCatalog(&buf, "Wrap mode", []catalogRow{
		{texture.WrapClampToEdge.String(), uint32(texture.WrapClampToEdge)},
		{texture.WrapClampToBorder.String(), uint32(texture.WrapClampToBorder)},
		{texture.WrapMirroredRepeat.String(), uint32(texture.WrapMirroredRepeat)},
		{texture.WrapRepeat.String(), uint32(texture.WrapRepeat)},
		{texture.WrapMirrorClampToEdge.String(), uint32(texture.WrapMirrorClampToEdge)},
	})
	writeCatalog(&buf, "Min filter", []catalogRow{
		{texture.MinFilterNearest.String(), uint32(texture.MinFilterNearest)},
		{texture.MinFilterLinear.String(), uint32(texture.MinFilterLinear)},
		{texture.MinFilterNearestMipNearest.String(), uint32(texture.MinFilterNearestMipNearest)},
		{texture.MinFilterLinearMipNearest.String(), uint32(texture.MinFilterLinearMipNearest)},
		{texture.MinFilterNearestMipLinear.String(), uint32(texture.MinFilterNearestMipLinear)},
		{texture.MinFilterLinearMipLinear.String(), uint32(texture.MinFilterLinearMipLinear)},
	})
	writeCatalog(&buf, "Mag filter", []catalogRow{
		{texture.MagFilterNearest.String(), uint32(texture.MagFilterNearest)},
		{texture.MagFilterLinear.String(), uint32(texture.MagFilterLinear)},
	})

	logger.Noticef("texture parameter catalog\n%s", buf.String())
	return nil
}

func writeCatalog(buf *bytes.Buffer, title string, rows []catalogRow) {
	table := tablewriter.NewWriter(buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{title, "GL value"})
	for _, row := range rows {
		table.Append([]string{row.name, fmt.Sprintf("0x%04X", row.value)})
	}
	table.Render()
	buf.WriteByte('\n')
}

package asset

import (
	"image"
	"image/color"

	// Container formats supported by the probe.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/texture"
)

// ImageInfo describes the dimensions and channel layout of an image resource,
// together with the default texture parameters for feeding its pixels to the
// GPU. It is derived from the image header alone; no pixel data is decoded.
type ImageInfo struct {
	// Path of the probed resource and the detected container ("png" etc).
	Path      string
	Container string

	Width  uint32
	Height uint32

	// Channel count of the decoded pixel layout. Note that this reflects
	// what the decoder produces, not what is stored on disk: paletted and
	// opaque truecolor images decode to 4 channels.
	Channels int

	PixelFormat    texture.PixelFormat
	InternalFormat texture.InternalFormat
	PixelType      texture.PixelType
}

// TexelSize returns the per-texel byte footprint of the decoded pixel layout.
func (inf *ImageInfo) TexelSize() int {
	return texture.TexelSize(inf.PixelFormat, inf.PixelType)
}

// UploadSize returns the total byte footprint of the decoded image when
// handed to the GPU.
func (inf *ImageInfo) UploadSize() int {
	return int(inf.Width) * int(inf.Height) * inf.TexelSize()
}

// ProbeImage reads just enough of res to decode the image header and fills
// in the default texture parameters for its channel layout. The internal
// format defaults assume 8 bit per channel storage even for 16 bit sources.
func ProbeImage(res *Resource) (*ImageInfo, error) {
	cfg, container, err := image.DecodeConfig(res)
	if err != nil {
		return nil, errors.Wrapf(err, "probe: could not decode image header of %s", res.Path())
	}

	channels, pixelType := channelLayout(cfg.ColorModel)
	info := &ImageInfo{
		Path:           res.Path(),
		Container:      container,
		Width:          uint32(cfg.Width),
		Height:         uint32(cfg.Height),
		Channels:       channels,
		PixelFormat:    texture.PixelFormatForChannels(channels),
		InternalFormat: texture.InternalFormatForChannels8(channels),
		PixelType:      pixelType,
	}
	if info.PixelFormat == texture.PixelFormatUnknown {
		return nil, errors.Errorf("probe: unsupported channel count %d in %s", channels, res.Path())
	}
	return info, nil
}

// Map a decoder color model to the channel count and component type of the
// pixel data it produces.
func channelLayout(model color.Model) (int, texture.PixelType) {
	switch model {
	case color.GrayModel:
		return 1, texture.PixelTypeUByte
	case color.Gray16Model:
		return 1, texture.PixelTypeUShort
	case color.YCbCrModel:
		return 3, texture.PixelTypeUByte
	case color.RGBA64Model, color.NRGBA64Model:
		return 4, texture.PixelTypeUShort
	default:
		// NRGBA/RGBA, paletted and anything exotic decode to 8 bit RGBA.
		return 4, texture.PixelTypeUByte
	}
}

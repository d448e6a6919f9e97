package texture

import (
	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/log"
)

var logger = log.New("texture")

// TexelComponentSize returns the size in bytes of a single component of the
// given pixel type: 1 for the byte types, 2 for the short types and 4 for
// the int types.
//
// PixelTypeFloat is not part of the mapping and falls into the unknown
// branch together with genuinely invalid values. Callers sizing float
// texture uploads must not rely on this function.
// TODO: float texel sizing, needed before float color attachments can be
// uploaded from client memory.
func TexelComponentSize(pixelType PixelType) int {
	switch pixelType {
	case PixelTypeUByte, PixelTypeByte:
		return 1
	case PixelTypeUShort, PixelTypeShort:
		return 2
	case PixelTypeUInt, PixelTypeInt:
		return 4
	default:
		logger.Criticalf("unknown pixel type: %s", pixelType)
		return 0
	}
}

// TexelComponentCount returns the number of components in the given pixel
// format. PixelFormatSRGB and PixelFormatUnknown carry no component count
// and fall into the unknown branch.
func TexelComponentCount(format PixelFormat) int {
	switch format {
	case PixelFormatDepth, PixelFormatDepthStencil, PixelFormatRed:
		return 1
	case PixelFormatRG:
		return 2
	case PixelFormatRGB, PixelFormatBGR:
		return 3
	case PixelFormatRGBA, PixelFormatBGRA:
		return 4
	default:
		logger.Criticalf("unknown pixel format: %s", format)
		return 0
	}
}

// TexelSize returns the number of bytes needed to represent a single texel
// of the given format and type. Failures of the two component lookups
// propagate as a 0 result.
func TexelSize(format PixelFormat, pixelType PixelType) int {
	return TexelComponentSize(pixelType) * TexelComponentCount(format)
}

// InternalFormatForChannels8 returns the default 8 bit per channel internal
// format for an image with the given channel count. Counts outside 1-4 log
// a warning and map to InternalFormatUnknown; callers must check for it
// before handing the value to the GL.
func InternalFormatForChannels8(numChannels int) InternalFormat {
	switch numChannels {
	case 1:
		return InternalFormatR8
	case 2:
		return InternalFormatRG8
	case 3:
		return InternalFormatRGB8
	case 4:
		return InternalFormatRGBA8
	default:
		logger.Warningf("unsupported texture format with %d channels", numChannels)
		return InternalFormatUnknown
	}
}

// PixelFormatForChannels returns the default client-side pixel layout for
// an image with the given channel count. Same out-of-range policy as
// InternalFormatForChannels8.
func PixelFormatForChannels(numChannels int) PixelFormat {
	switch numChannels {
	case 1:
		return PixelFormatRed
	case 2:
		return PixelFormatRG
	case 3:
		return PixelFormatRGB
	case 4:
		return PixelFormatRGBA
	default:
		logger.Warningf("unsupported texture format with %d channels", numChannels)
		return PixelFormatUnknown
	}
}

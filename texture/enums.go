package texture

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Type selects the dimensionality/kind of a texture object.
//
// See https://www.khronos.org/registry/OpenGL-Refpages/gl4/html/glCreateTextures.xhtml
type Type uint32

const (
	Type1D            Type = gl.TEXTURE_1D
	Type2D            Type = gl.TEXTURE_2D
	Type3D            Type = gl.TEXTURE_3D
	TypeCubemap       Type = gl.TEXTURE_CUBE_MAP
	Type2DMultisample Type = gl.TEXTURE_2D_MULTISAMPLE
)

func (t Type) String() string {
	switch t {
	case Type1D:
		return "1D"
	case Type2D:
		return "2D"
	case Type3D:
		return "3D"
	case TypeCubemap:
		return "Cubemap"
	case Type2DMultisample:
		return "2DMultisample"
	}
	return fmt.Sprintf("Type(0x%04X)", uint32(t))
}

// InternalFormat selects how the GPU stores a texture internally. This is
// the subset of the sized formats from glTexImage2D that the engine uses.
//
// See https://www.khronos.org/registry/OpenGL-Refpages/gl4/html/glTexImage2D.xhtml
type InternalFormat uint32

const (
	InternalFormatUnknown      InternalFormat = gl.NONE
	InternalFormatDepth        InternalFormat = gl.DEPTH_COMPONENT
	InternalFormatDepthStencil InternalFormat = gl.DEPTH_STENCIL
	InternalFormatR8           InternalFormat = gl.R8
	InternalFormatR16          InternalFormat = gl.R16
	InternalFormatRG8          InternalFormat = gl.RG8
	InternalFormatRGB8         InternalFormat = gl.RGB8
	InternalFormatSRGB8        InternalFormat = gl.SRGB8
	InternalFormatRGB10        InternalFormat = gl.RGB10
	InternalFormatRGB16        InternalFormat = gl.RGB16
	InternalFormatRGB32F       InternalFormat = gl.RGB32F
	InternalFormatRGBA8        InternalFormat = gl.RGBA8
	InternalFormatSRGBA8       InternalFormat = gl.SRGB8_ALPHA8
	InternalFormatRGBA16       InternalFormat = gl.RGBA16
	InternalFormatRGBA32F      InternalFormat = gl.RGBA32F
)

func (f InternalFormat) String() string {
	switch f {
	case InternalFormatUnknown:
		return "Unknown"
	case InternalFormatDepth:
		return "Depth"
	case InternalFormatDepthStencil:
		return "DepthStencil"
	case InternalFormatR8:
		return "R8"
	case InternalFormatR16:
		return "R16"
	case InternalFormatRG8:
		return "RG8"
	case InternalFormatRGB8:
		return "RGB8"
	case InternalFormatSRGB8:
		return "SRGB8"
	case InternalFormatRGB10:
		return "RGB10"
	case InternalFormatRGB16:
		return "RGB16"
	case InternalFormatRGB32F:
		return "RGB32F"
	case InternalFormatRGBA8:
		return "RGBA8"
	case InternalFormatSRGBA8:
		return "SRGBA8"
	case InternalFormatRGBA16:
		return "RGBA16"
	case InternalFormatRGBA32F:
		return "RGBA32F"
	}
	return fmt.Sprintf("InternalFormat(0x%04X)", uint32(f))
}

// PixelFormat describes the component layout of client-side pixel data
// handed to the GPU during upload.
type PixelFormat uint32

const (
	PixelFormatUnknown      PixelFormat = gl.NONE
	PixelFormatRed          PixelFormat = gl.RED
	PixelFormatRG           PixelFormat = gl.RG
	PixelFormatRGB          PixelFormat = gl.RGB
	PixelFormatSRGB         PixelFormat = gl.SRGB
	PixelFormatBGR          PixelFormat = gl.BGR
	PixelFormatRGBA         PixelFormat = gl.RGBA
	PixelFormatBGRA         PixelFormat = gl.BGRA
	PixelFormatDepth        PixelFormat = gl.DEPTH_COMPONENT
	PixelFormatDepthStencil PixelFormat = gl.DEPTH_STENCIL
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatUnknown:
		return "Unknown"
	case PixelFormatRed:
		return "Red"
	case PixelFormatRG:
		return "RG"
	case PixelFormatRGB:
		return "RGB"
	case PixelFormatSRGB:
		return "SRGB"
	case PixelFormatBGR:
		return "BGR"
	case PixelFormatRGBA:
		return "RGBA"
	case PixelFormatBGRA:
		return "BGRA"
	case PixelFormatDepth:
		return "Depth"
	case PixelFormatDepthStencil:
		return "DepthStencil"
	}
	return fmt.Sprintf("PixelFormat(0x%04X)", uint32(f))
}

// ParsePixelFormat maps a pixel format name (as produced by String) back to
// its value. Matching is case-insensitive.
func ParsePixelFormat(name string) (PixelFormat, error) {
	switch strings.ToLower(name) {
	case "red":
		return PixelFormatRed, nil
	case "rg":
		return PixelFormatRG, nil
	case "rgb":
		return PixelFormatRGB, nil
	case "srgb":
		return PixelFormatSRGB, nil
	case "bgr":
		return PixelFormatBGR, nil
	case "rgba":
		return PixelFormatRGBA, nil
	case "bgra":
		return PixelFormatBGRA, nil
	case "depth":
		return PixelFormatDepth, nil
	case "depthstencil":
		return PixelFormatDepthStencil, nil
	}
	return PixelFormatUnknown, fmt.Errorf("texture: unknown pixel format %q", name)
}

// PixelType describes the data type of each component of client-side pixel
// data.
type PixelType uint32

const (
	PixelTypeUByte  PixelType = gl.UNSIGNED_BYTE
	PixelTypeByte   PixelType = gl.BYTE
	PixelTypeUShort PixelType = gl.UNSIGNED_SHORT
	PixelTypeShort  PixelType = gl.SHORT
	PixelTypeUInt   PixelType = gl.UNSIGNED_INT
	PixelTypeInt    PixelType = gl.INT
	PixelTypeFloat  PixelType = gl.FLOAT
)

func (t PixelType) String() string {
	switch t {
	case PixelTypeUByte:
		return "UByte"
	case PixelTypeByte:
		return "Byte"
	case PixelTypeUShort:
		return "UShort"
	case PixelTypeShort:
		return "Short"
	case PixelTypeUInt:
		return "UInt"
	case PixelTypeInt:
		return "Int"
	case PixelTypeFloat:
		return "Float"
	}
	return fmt.Sprintf("PixelType(0x%04X)", uint32(t))
}

// ParsePixelType maps a pixel type name (as produced by String) back to its
// value. Matching is case-insensitive.
func ParsePixelType(name string) (PixelType, error) {
	switch strings.ToLower(name) {
	case "ubyte":
		return PixelTypeUByte, nil
	case "byte":
		return PixelTypeByte, nil
	case "ushort":
		return PixelTypeUShort, nil
	case "short":
		return PixelTypeShort, nil
	case "uint":
		return PixelTypeUInt, nil
	case "int":
		return PixelTypeInt, nil
	case "float":
		return PixelTypeFloat, nil
	}
	return 0, fmt.Errorf("texture: unknown pixel type %q", name)
}

// WrapMode controls how out-of-range texture coordinates are resolved on
// each of the S/T/R axes.
type WrapMode uint32

const (
	WrapClampToEdge       WrapMode = gl.CLAMP_TO_EDGE
	WrapClampToBorder     WrapMode = gl.CLAMP_TO_BORDER
	WrapMirroredRepeat    WrapMode = gl.MIRRORED_REPEAT
	WrapRepeat            WrapMode = gl.REPEAT
	WrapMirrorClampToEdge WrapMode = gl.MIRROR_CLAMP_TO_EDGE
)

func (m WrapMode) String() string {
	switch m {
	case WrapClampToEdge:
		return "ClampToEdge"
	case WrapClampToBorder:
		return "ClampToBorder"
	case WrapMirroredRepeat:
		return "MirroredRepeat"
	case WrapRepeat:
		return "Repeat"
	case WrapMirrorClampToEdge:
		return "MirrorClampToEdge"
	}
	return fmt.Sprintf("WrapMode(0x%04X)", uint32(m))
}

// MinFilter controls sampling when a texel covers less than one screen
// pixel.
type MinFilter uint32

const (
	MinFilterNearest           MinFilter = gl.NEAREST
	MinFilterLinear            MinFilter = gl.LINEAR
	MinFilterNearestMipNearest MinFilter = gl.NEAREST_MIPMAP_NEAREST
	MinFilterLinearMipNearest  MinFilter = gl.LINEAR_MIPMAP_NEAREST
	MinFilterNearestMipLinear  MinFilter = gl.NEAREST_MIPMAP_LINEAR
	MinFilterLinearMipLinear   MinFilter = gl.LINEAR_MIPMAP_LINEAR
)

func (f MinFilter) String() string {
	switch f {
	case MinFilterNearest:
		return "Nearest"
	case MinFilterLinear:
		return "Linear"
	case MinFilterNearestMipNearest:
		return "NearestMipNearest"
	case MinFilterLinearMipNearest:
		return "LinearMipNearest"
	case MinFilterNearestMipLinear:
		return "NearestMipLinear"
	case MinFilterLinearMipLinear:
		return "LinearMipLinear"
	}
	return fmt.Sprintf("MinFilter(0x%04X)", uint32(f))
}

// MagFilter controls sampling when a texel covers more than one screen
// pixel.
type MagFilter uint32

const (
	MagFilterNearest MagFilter = gl.NEAREST
	MagFilterLinear  MagFilter = gl.LINEAR
)

func (f MagFilter) String() string {
	switch f {
	case MagFilterNearest:
		return "Nearest"
	case MagFilterLinear:
		return "Linear"
	}
	return fmt.Sprintf("MagFilter(0x%04X)", uint32(f))
}

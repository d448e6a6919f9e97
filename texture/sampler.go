package texture

// SamplerOptions bundles the sampling parameters applied to a texture unit.
type SamplerOptions struct {
	// Wrap behavior per axis (GL_TEXTURE_WRAP_S/T/R).
	WrapS WrapMode
	WrapT WrapMode
	WrapR WrapMode

	// Minification/magnification filters.
	MinFilter MinFilter
	MagFilter MagFilter
}

// DefaultSamplerOptions returns the GL default sampling state: repeat
// wrapping on all axes, mip-mapped nearest minification and linear
// magnification.
func DefaultSamplerOptions() SamplerOptions {
	return SamplerOptions{
		WrapS:     WrapRepeat,
		WrapT:     WrapRepeat,
		WrapR:     WrapRepeat,
		MinFilter: MinFilterNearestMipLinear,
		MagFilter: MagFilterLinear,
	}
}

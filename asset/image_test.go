package asset

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/IbeAbdulla-Start/QM-Studios-Rubbish-Rush-Repo/texture"
)

func pngResource(t *testing.T, name string, img image.Image) *Resource {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return NewResourceFromStream(name, &buf)
}

func TestProbeGrayImage(t *testing.T) {
	res := pngResource(t, "gray.png", image.NewGray(image.Rect(0, 0, 16, 8)))
	defer res.Close()

	info, err := ProbeImage(res)
	if err != nil {
		t.Fatal(err)
	}

	if info.Container != "png" {
		t.Fatalf("expected container to be png; got %s", info.Container)
	}
	if info.Width != 16 || info.Height != 8 {
		t.Fatalf("expected 16x8 image; got %dx%d", info.Width, info.Height)
	}
	if info.Channels != 1 {
		t.Fatalf("expected 1 channel; got %d", info.Channels)
	}
	if info.PixelFormat != texture.PixelFormatRed {
		t.Fatalf("expected pixel format Red; got %s", info.PixelFormat)
	}
	if info.InternalFormat != texture.InternalFormatR8 {
		t.Fatalf("expected internal format R8; got %s", info.InternalFormat)
	}
	if info.PixelType != texture.PixelTypeUByte {
		t.Fatalf("expected pixel type UByte; got %s", info.PixelType)
	}
	if info.TexelSize() != 1 {
		t.Fatalf("expected 1 byte per texel; got %d", info.TexelSize())
	}
	if info.UploadSize() != 16*8 {
		t.Fatalf("expected %d upload bytes; got %d", 16*8, info.UploadSize())
	}
}

func TestProbeRGBAImage(t *testing.T) {
	res := pngResource(t, "rgba.png", image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	defer res.Close()

	info, err := ProbeImage(res)
	if err != nil {
		t.Fatal(err)
	}

	if info.Channels != 4 {
		t.Fatalf("expected 4 channels; got %d", info.Channels)
	}
	if info.PixelFormat != texture.PixelFormatRGBA {
		t.Fatalf("expected pixel format RGBA; got %s", info.PixelFormat)
	}
	if info.InternalFormat != texture.InternalFormatRGBA8 {
		t.Fatalf("expected internal format RGBA8; got %s", info.InternalFormat)
	}
	if info.UploadSize() != 4*4*4 {
		t.Fatalf("expected %d upload bytes; got %d", 4*4*4, info.UploadSize())
	}
}

func TestProbeGray16Image(t *testing.T) {
	res := pngResource(t, "gray16.png", image.NewGray16(image.Rect(0, 0, 2, 2)))
	defer res.Close()

	info, err := ProbeImage(res)
	if err != nil {
		t.Fatal(err)
	}

	if info.PixelType != texture.PixelTypeUShort {
		t.Fatalf("expected pixel type UShort; got %s", info.PixelType)
	}
	if info.TexelSize() != 2 {
		t.Fatalf("expected 2 bytes per texel; got %d", info.TexelSize())
	}
}

func TestProbeNonImageResource(t *testing.T) {
	res := NewResourceFromStream("scene.obj", strings.NewReader("v 0 0 0"))
	defer res.Close()

	_, err := ProbeImage(res)
	if err == nil || !strings.Contains(err.Error(), "probe: could not decode image header of scene.obj") {
		t.Fatalf("expected a probe decode error; got %v", err)
	}
}

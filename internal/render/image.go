package render

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// Image wraps a row-major RGBA frame as an image without copying.
func Image(pix []byte, w, h int) (*image.RGBA, error) {
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("render: frame has %d bytes, want %d for %dx%d", len(pix), w*h*4, w, h)
	}
	return &image.RGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

// Upscale returns img enlarged by an integer factor with nearest-neighbor
// sampling, so every cell stays a crisp square.
func Upscale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		row := out.Pix[y*scale*out.Stride : y*scale*out.Stride+out.Stride]
		for x := 0; x < b.Dx(); x++ {
			px := src[x*4 : x*4+4]
			for i := 0; i < scale; i++ {
				copy(row[(x*scale+i)*4:], px)
			}
		}
		for i := 1; i < scale; i++ {
			copy(out.Pix[(y*scale+i)*out.Stride:], row)
		}
	}
	return out
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeJPEG writes img as JPEG at the given quality.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestImageRejectsShortFrame(t *testing.T) {
	if _, err := Image(make([]byte, 10), 2, 2); err == nil {
		t.Fatal("short frame accepted")
	}
}

func TestUpscale(t *testing.T) {
	pix := []byte{
		0, 0, 0, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 0, 0, 0, 255,
	}
	img, err := Image(pix, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	big := Upscale(img, 3)
	if big.Bounds().Dx() != 6 || big.Bounds().Dy() != 6 {
		t.Fatalf("upscaled bounds %v", big.Bounds())
	}
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := white
			if (x < 3) == (y < 3) {
				want = black
			}
			if got := big.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if Upscale(img, 1) != img {
		t.Fatal("scale 1 copied the image")
	}
}

func TestEncoders(t *testing.T) {
	img, _ := Image(make([]byte, 4*4*4), 4, 4)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("missing PNG signature")
	}
	buf.Reset()
	if err := EncodeJPEG(&buf, img, 90); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xff, 0xd8}) {
		t.Fatal("missing JPEG SOI marker")
	}
}

// This file is part of glesbench.
//
// glesbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glesbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glesbench.  If not, see <https://www.gnu.org/licenses/>.

// Package screenshot reads the final frame back from the display framebuffer
// and saves it to disk.
package screenshot

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/logger"
	"golang.org/x/image/draw"
)

// Sentinel error patterns.
const (
	InvalidScale = "screenshot: invalid scale (%v)"
	SaveError    = "screenshot: %v"
)

// Capture the contents of the display framebuffer. The device returns rows
// bottom first so the image is flipped before being returned.
func Capture(dev gles.Device, width int32, height int32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	dev.BindFramebuffer(gles.DisplayFramebuffer)
	dev.ReadPixels(0, 0, width, height, img.Pix)

	row := make([]uint8, img.Stride)
	for top, bot := 0, int(height)-1; top < bot; top, bot = top+1, bot-1 {
		t := img.Pix[top*img.Stride : (top+1)*img.Stride]
		b := img.Pix[bot*img.Stride : (bot+1)*img.Stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}

	return img
}

// Scale returns a copy of the image resized by the scale factor. A scale of
// one returns the original image.
func Scale(img *image.RGBA, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, curated.Errorf(InvalidScale, scale)
	}
	if scale == 1 {
		return img, nil
	}

	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// Save the image to filename after scaling. The encoding is chosen by the
// filename extension: webp, jpg/jpeg or png. Any other extension is saved as
// PNG.
func Save(img *image.RGBA, filename string, scale float64) (rerr error) {
	img, err := Scale(img, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(SaveError, err)
		}
	}()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s (%dx%d)", filename, img.Bounds().Dx(), img.Bounds().Dy())

	return nil
}

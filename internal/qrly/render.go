package qrly

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/certograph/harness/internal/models"
)

// Render produces the PNG bytes for a validated spec. The output is
// byte-reproducible: the module matrix, raster and PNG encoder settings are
// all deterministic for identical specs.
func Render(spec models.QRSpec) ([]byte, error) {
	code, err := qrcode.New(spec.Payload, recoveryLevel(spec.RecoveryLevel))
	if err != nil {
		return nil, fmt.Errorf("cannot encode payload: %v", err)
	}

	// The matrix includes the encoder's 4-module quiet zone
	grid := code.Bitmap()
	moduleCount := len(grid)

	// Module pixel width derives from the untrimmed module count, so a trim
	// removes border pixels rather than rescaling the code
	scale := 1
	if spec.Size > 0 {
		scale = spec.Size / moduleCount
		if scale < 1 {
			scale = 1
		}
	}

	if spec.TrimWidth > 0 {
		if 2*spec.TrimWidth >= moduleCount {
			return nil, fmt.Errorf("trim_width %d strips the entire %d-module matrix", spec.TrimWidth, moduleCount)
		}
		grid = trimQuietZone(grid, spec.TrimWidth)
		moduleCount = len(grid)
	}

	img := rasterize(grid, scale, spec.Foreground, spec.Background)

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("cannot encode PNG: %v", err)
	}
	return buf.Bytes(), nil
}

// recoveryLevel maps a recovery level name onto the encoder's error-correction
// levels: low→L, medium→M, high→Q, highest→H.
func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case models.RecoveryLow:
		return qrcode.Low
	case models.RecoveryHigh:
		return qrcode.High
	case models.RecoveryHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// trimQuietZone crops width modules from every side of the matrix.
func trimQuietZone(grid [][]bool, width int) [][]bool {
	size := len(grid) - 2*width
	trimmed := make([][]bool, size)
	for y := 0; y < size; y++ {
		trimmed[y] = grid[y+width][width : width+size]
	}
	return trimmed
}

// rasterize paints each module as a scale×scale pixel block, foreground for
// dark modules and background for light ones.
func rasterize(grid [][]bool, scale int, fg, bg models.RGBA) *image.NRGBA {
	foreground := color.NRGBA{R: fg.R, G: fg.G, B: fg.B, A: fg.A}
	background := color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A}

	width := len(grid) * scale
	img := image.NewNRGBA(image.Rect(0, 0, width, width))
	for y, row := range grid {
		for x, dark := range row {
			paint := background
			if dark {
				paint = foreground
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(x*scale+dx, y*scale+dy, paint)
				}
			}
		}
	}
	return img
}

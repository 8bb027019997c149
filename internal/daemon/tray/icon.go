package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
)

const iconSize = 32

// loadIcon reads the tray icon from path, falling back to a generated
// placeholder when the file is missing or unreadable.
func loadIcon(path string) []byte {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return data
		}
		log.Printf("[tray] Icon %s unavailable, using placeholder: %v", path, err)
	}
	return placeholderIcon()
}

// placeholderIcon draws a filled disc on a transparent background.
func placeholderIcon() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	fill := color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}

	c := float64(iconSize-1) / 2
	r2 := c * c
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			if dx*dx+dy*dy <= r2 {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

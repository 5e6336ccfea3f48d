package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const avatarMaxSide = 512

// NormalizeAvatar decodifica jpeg/png, limita o lado maior a 512px e
// reencoda em webp. Tudo que o app serve de avatar passa por aqui.
func NormalizeAvatar(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > avatarMaxSide || h > avatarMaxSide {
		if w >= h {
			h = h * avatarMaxSide / w
			w = avatarMaxSide
		} else {
			w = w * avatarMaxSide / h
			h = avatarMaxSide
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

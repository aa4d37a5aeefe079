package render

import (
	"image/color"

	"torus-life/pkg/core"
)

// fillBitsRGBA converts packed cell words into RGBA pixels in buf. Only the
// first n cells are written; buf must hold at least 4*n bytes.
func fillBitsRGBA(buf []byte, words []uint32, n int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < n; i++ {
		base := i * 4
		if words[i/core.WordBits]&(1<<uint(i%core.WordBits)) != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

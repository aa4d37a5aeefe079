package render

import (
	"bufio"
	"io"

	"torus-life/pkg/core"
)

// WriteText prints the packed grid as one line per row, using alive and dead
// as the cell glyphs.
func WriteText(w io.Writer, words []uint32, width, height int, alive, dead byte) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, width+1)
	line[width] = '\n'
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := row*width + col
			if words[i/core.WordBits]&(1<<uint(i%core.WordBits)) != 0 {
				line[col] = alive
			} else {
				line[col] = dead
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

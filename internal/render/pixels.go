package render

import "image/color"

// clearRGBA fills the buffer with the background color.
func clearRGBA(buf []byte, bg color.RGBA) {
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = bg.R
		buf[i+1] = bg.G
		buf[i+2] = bg.B
		buf[i+3] = 255
	}
}

// plotPoint blends an opacity-scaled square point into the RGBA buffer.
// Overlapping points accumulate additively and saturate per channel, so
// dense clusters glow instead of overwriting each other.
func plotPoint(buf []byte, w, h, cx, cy, size int, col color.RGBA, opacity float64) {
	if size < 1 || opacity <= 0 {
		return
	}
	half := size / 2
	for y := cy - half; y < cy-half+size; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := cx - half; x < cx-half+size; x++ {
			if x < 0 || x >= w {
				continue
			}
			base := (y*w + x) * 4
			buf[base+0] = addSat(buf[base+0], float64(col.R)*opacity)
			buf[base+1] = addSat(buf[base+1], float64(col.G)*opacity)
			buf[base+2] = addSat(buf[base+2], float64(col.B)*opacity)
			buf[base+3] = 255
		}
	}
}

func addSat(b byte, v float64) byte {
	sum := int(b) + int(v)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

// ghostBlend is how far ghost cells are faded toward the background.
const ghostBlend = 0.65

var ghostBackground = colorful.Color{R: 0.1, G: 0.1, B: 0.1}

func toColorful(c tetris.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// figureColor converts an engine color to a terminal color.
func figureColor(c tetris.Color) tcell.Color {
	return fromColorful(toColorful(c))
}

// ghostColor fades c toward the background. The theme background is used
// when it carries an RGB value.
func ghostColor(c tetris.Color, t Theme) tcell.Color {
	bg := ghostBackground
	if t.Background.Valid() {
		r, g, b := t.Background.RGB()
		if r >= 0 {
			bg = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
	}

	return fromColorful(toColorful(c).BlendRgb(bg, ghostBlend))
}

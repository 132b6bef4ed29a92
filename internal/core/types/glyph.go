package types

import (
	"fmt"
)

// Glyph is one coloured map character packed into 32 bits:
//
//	[0:8]  - ASCII character
//	[8:32] - 0xRRGGBB colour
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// Terminal palette used by the terrain catalog and agents.
// Values are plain RGB so both the tcell front end and the JSON frames can use them.
const (
	ColorBlack   uint32 = 0x000000
	ColorRed     uint32 = 0xCD3131
	ColorGreen   uint32 = 0x0DBC79
	ColorYellow  uint32 = 0xE5E510
	ColorBlue    uint32 = 0x2472C8
	ColorMagenta uint32 = 0xBC3FBC
	ColorCyan    uint32 = 0x11A8CD
	ColorWhite   uint32 = 0xE5E5E5
)

// MakeGlyph packs an RGB colour and a character. Only the low 24 bits of
// colorRGB are kept.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color returns the 0xRRGGBB colour.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char returns the ASCII character.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// WithColor keeps the character and swaps the colour, e.g. a defeated
// trainer keeps its letter but is drawn in yellow.
func (g Glyph) WithColor(colorRGB uint32) Glyph {
	return MakeGlyph(colorRGB, g.Char())
}

// String implements fmt.Stringer: Glyph{char='A', color=#FFA500}.
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor returns the colour as "#RRGGBB".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

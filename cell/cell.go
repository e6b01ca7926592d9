// Package cell translates characters into 6-dot Braille cell patterns.
package cell

// Pattern is a 6-bit Braille cell code. Bit 5 is dot 1 and bit 0 is dot 6,
// numbered top-to-bottom down the left column and then the right column.
type Pattern uint8

// Patterns for the five supported symbols. Anything outside the supported
// character set encodes as Blank.
const (
	Blank       Pattern = 0x00 // 000000
	Period      Pattern = 0x13 // 010011
	Comma       Pattern = 0x10 // 010000
	Question    Pattern = 0x19 // 011001
	Exclamation Pattern = 0x1A // 011010
)

// letters holds the patterns for a-z
var letters = [26]Pattern{
	0b100000, 0b101000, 0b110000, 0b110100, 0b100100, // a-e
	0b111000, 0b111100, 0b101100, 0b011000, 0b011100, // f-j
	0b100010, 0b101010, 0b110010, 0b110110, 0b100110, // k-o
	0b111010, 0b111110, 0b101110, 0b011010, 0b011110, // p-t
	0b100011, 0b101011, 0b011101, 0b110011, 0b110111, // u-y
	0b100111, // z
}

// digits holds the patterns for 0-9. These are independent glyphs, not
// derived from the letter table.
var digits = [10]Pattern{
	0b010110, 0b100000, 0b101000, 0b110000, 0b110100, // 0-4
	0b100100, 0b111000, 0b111100, 0b101100, 0b011000, // 5-9
}

// Encode returns the Braille pattern for a character. Letters are
// case-insensitive. Unsupported characters encode as the blank cell so that
// the render loop never stalls on bad input.
func Encode(c byte) Pattern {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	switch {
	case c >= 'a' && c <= 'z':
		return letters[c-'a']
	case c >= '0' && c <= '9':
		return digits[c-'0']
	}

	switch c {
	case '.':
		return Period
	case ',':
		return Comma
	case '?':
		return Question
	case '!':
		return Exclamation
	}
	return Blank
}

// EncodeString encodes each byte of text into its cell pattern
func EncodeString(text string) []Pattern {
	patterns := make([]Pattern, len(text))
	for i := 0; i < len(text); i++ {
		patterns[i] = Encode(text[i])
	}
	return patterns
}

// Halves splits the cell into its two 3-dot column sub-patterns. The left
// column (dots 1-3) drives one actuator and the right column (dots 4-6)
// drives the other.
func (p Pattern) Halves() (left, right uint8) {
	return uint8(p>>3) & 0x07, uint8(p) & 0x07
}

// Dot reports whether dot i (0-5 in reading order) is raised
func (p Pattern) Dot(i int) bool {
	return p&(1<<(5-i)) != 0
}

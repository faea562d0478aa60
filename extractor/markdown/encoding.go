package markdown

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decode turns raw file bytes into a string, working through the fallback
// chain UTF-8, Windows-1252, Latin-1. Rendered table files are usually UTF-8
// but legacy dictionary exports show up in single-byte encodings.
//
// Windows-1252 is tried before Latin-1: Latin-1 accepts every byte value, so
// it has to be the terminal fallback. A Windows-1252 decode that produces
// replacement runes (bytes 0x81, 0x8D and friends are unmapped) falls
// through.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if s, err := charmap.Windows1252.NewDecoder().String(string(data)); err == nil {
		if !strings.ContainsRune(s, utf8.RuneError) {
			return s
		}
	}
	s, _ := charmap.ISO8859_1.NewDecoder().String(string(data))
	return s
}

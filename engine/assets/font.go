package assets

import (
	"bytes"
	"fmt"
	"os"
)

var fontMagics = [][]byte{
	{0x00, 0x01, 0x00, 0x00}, // TrueType
	[]byte("OTTO"),           // CFF OpenType
	[]byte("true"),           // Apple TrueType
}

// LoadFont reads a TrueType or OpenType file for text.Load.
func LoadFont(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	for _, m := range fontMagics {
		if bytes.HasPrefix(b, m) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("load font %q: not a TrueType/OpenType file", path)
}

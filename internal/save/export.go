package save

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
)

var ErrInvalidImport = errors.New("invalid import")

// Export encodes a raw save for copy and paste.
func Export(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// Import reverses Export and rejects anything that does not decode to a
// save.
func Import(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if _, err := Decode(raw, tavern.Templates()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return raw, nil
}

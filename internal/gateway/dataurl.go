package gateway

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrNotDataURL is returned when a binary reference is a plain resource
// locator rather than a decodable data URL. Callers must supply generated
// artifacts and chat attachments as data URLs.
var ErrNotDataURL = errors.New("reference is not a data URL")

// EncodeDataURL packs raw bytes into a base64 data URL.
func EncodeDataURL(data []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a data URL at its metadata/payload boundary and
// returns the raw payload bytes and MIME type.
func DecodeDataURL(ref string) (data []byte, mimeType string, err error) {
	if !strings.HasPrefix(ref, "data:") {
		return nil, "", ErrNotDataURL
	}

	meta, payload, found := strings.Cut(ref, ",")
	if !found {
		return nil, "", ErrNotDataURL
	}

	meta = strings.TrimPrefix(meta, "data:")
	mimeType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, "", fmt.Errorf("%w: unsupported encoding %q", ErrNotDataURL, encoding)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decoding data URL payload: %w", err)
	}
	return data, mimeType, nil
}

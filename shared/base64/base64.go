package base64

import (
	"encoding/base64"
	"strings"
)

// GetContentType extracts the MIME type from a data URI ("data:<type>;base64,...").
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// StripDataURI drops a data URI prefix if present, leaving the raw base64 payload.
func StripDataURI(file string) string {
	if idx := strings.Index(file, ";base64,"); idx != -1 {
		return file[idx+len(";base64,"):]
	}

	return file
}

// Decode decodes a base64 payload, tolerating a data URI prefix.
func Decode(payload string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(StripDataURI(payload))
}

// Encode encodes raw bytes into standard base64.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewID returns a new url-safe identifier for server-created records such
// as filter presets.
func NewID() (string, error) {
	return gonanoid.New()
}

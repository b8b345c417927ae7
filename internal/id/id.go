package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// alphabet avoids characters that are awkward to type back at a prompt.
const alphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const size = 8

// Generate creates a prefixed id such as "B-7KQ2M9XA".
func Generate(prefix string) (string, error) {
	id, err := gonanoid.Generate(alphabet, size)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// RandomHexUpper returns an upper-cased hex string generated from n
// bytes of cryptographically secure random data.  It supplies the
// random suffix of e-ticket numbers.
func RandomHexUpper(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

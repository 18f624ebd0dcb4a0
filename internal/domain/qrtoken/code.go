package qrtoken

import (
	"crypto/rand"
)

// codeAlphabet deliberately excludes lowercase letters: codes are rendered as
// QR images and occasionally typed in by staff.
const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 32
)

// GenerateCode returns a 32-character opaque code from [A-Z0-9]. Random bytes
// above the largest multiple of the alphabet size are rejected to keep the
// distribution uniform.
func GenerateCode() (string, error) {
	const maxAccepted = byte(252) // 7 * 36; highest byte value without modulo bias

	out := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength*2)
	for len(out) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= maxAccepted {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == CodeLength {
				break
			}
		}
	}
	return string(out), nil
}

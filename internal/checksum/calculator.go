package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content checksums.
type Calculator interface {
	// Sum returns the hex encoded checksum of content.
	Sum(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Sum computes SHA-256 of content.
func (c SHA256) Sum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Short abbreviates a checksum for log output.
func Short(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

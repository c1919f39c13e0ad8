// Package checksum hashes build outputs.
//
// The build pipeline compares the checksum of a freshly generated file with
// the one already on disk and skips the write when they match, so rebuilding
// an unchanged project leaves file modification times alone.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.Sum(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum

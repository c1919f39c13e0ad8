// Package files groups file access used by the header build.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//
// The config loader, the compiler's CSS inlining and the build pipeline all
// read and write through filesystem.Provider so they can be tested against
// an in-memory tree.
package files

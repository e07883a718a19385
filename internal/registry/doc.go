// Package registry maps output format names to the encoders that implement
// them.
//
// Encoders are contributed by modules (see the modules/ directory). Each
// module registers itself once at application start, and the registry is
// validated before any output is written so that a misconfigured build fails
// before touching the file system.
package registry

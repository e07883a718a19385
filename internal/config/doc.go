// Package config defines the format-agnostic scenario document and the
// Loader interface that produces it.
//
// A Document is the raw, unvalidated form of a scenario file. Parameter and
// sample-count values are kept as cty values so every file format hands the
// scenario package the same shape. Concrete loaders live in the hcl_adapter
// and file_adapter packages.
package config

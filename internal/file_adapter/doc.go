// Package file_adapter loads scenarios from tree-shaped formats: TOML, YAML
// and JSON. All three share one schema:
//
//	name = "demo"
//	seed = 42
//
//	[[variable]]
//	name = "v"
//	distribution = "uniform"
//	samples = 5
//	params = { low = 0, high = 1 }
//
// YAML and JSON spell the variable list `variables`. Unknown keys are
// rejected so a typo never silently becomes a default.
package file_adapter

// Package hcl_adapter loads scenarios written in HCL.
//
// A scenario file holds at most one `scenario` block and any number of
// labelled `variable` blocks:
//
//	scenario {
//	  name = "checkout"
//	  seed = 42
//	}
//
//	variable "latency_ms" {
//	  distribution = "lognormal"
//	  samples      = 100
//	  params       = { mu = 3, sigma = 0.4 }
//	}
//
// Expressions are evaluated with a small set of pure functions (see
// EvalContext), so parameters may be computed, e.g. `high = pow(2, 10)`.
package hcl_adapter

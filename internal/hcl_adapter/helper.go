package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
)

// findUniqueBlock returns the single block of the given type, or nil. More
// than one block of that type is reported as a diagnostic.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks.OfType(name) {
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %q block", name),
				Detail:   fmt.Sprintf("Only one %q block is allowed.", name),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		found = block
	}

	return found, diags
}

// decodeSeed reads an optional non-negative whole-number seed.
func decodeSeed(attr *hcl.Attribute, evalCtx *hcl.EvalContext) (*uint64, hcl.Diagnostics) {
	if attr == nil {
		return nil, nil
	}
	var seed uint64
	diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &seed)
	if diags.HasErrors() {
		return nil, diags
	}
	return &seed, nil
}

// objectAttributes evaluates an object-valued expression and returns its
// attributes. Both object and map results are accepted.
func objectAttributes(expr hcl.Expression, evalCtx *hcl.EvalContext, what string) (map[string]cty.Value, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !val.IsKnown() || !(ty.IsObjectType() || ty.IsMapType()) {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid %s", what),
			Detail:   fmt.Sprintf("The %s must be an object, e.g. { low = 0, high = 1 }; got %s.", what, ty.FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return val.AsValueMap(), nil
}

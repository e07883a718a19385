package hcl_adapter

import (
	"context"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/randscenario/internal/config"
	"github.com/specialistvlad/randscenario/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses a single HCL scenario file into a config.Document.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}

	doc, diags := l.parse(src, path)
	if diags.HasErrors() {
		return nil, &config.ParseError{Path: path, Err: diags}
	}

	logger.Debug("HCL loading complete.", "scenario", doc.Name, "variables", len(doc.Variables))
	return doc, nil
}

func (l *Loader) parse(src []byte, filename string) (*config.Document, hcl.Diagnostics) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	content, contentDiags := file.Body.Content(rootSchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	evalCtx := EvalContext()
	doc := &config.Document{Path: filename, Format: "hcl"}

	scenarioBlock, blockDiags := findUniqueBlock(content.Blocks, "scenario")
	diags = append(diags, blockDiags...)
	if scenarioBlock != nil {
		diags = append(diags, l.decodeScenario(scenarioBlock, evalCtx, doc)...)
	}

	for _, block := range content.Blocks.OfType("variable") {
		v, varDiags := l.decodeVariable(block, evalCtx)
		diags = append(diags, varDiags...)
		if v != nil {
			doc.Variables = append(doc.Variables, v)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return doc, diags
}

func (l *Loader) decodeScenario(block *hcl.Block, evalCtx *hcl.EvalContext, doc *config.Document) hcl.Diagnostics {
	body, diags := block.Body.Content(scenarioBodySchema)
	if diags.HasErrors() {
		return diags
	}

	if attr, ok := body.Attributes["name"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, evalCtx, &doc.Name)...)
	}

	seed, seedDiags := decodeSeed(body.Attributes["seed"], evalCtx)
	diags = append(diags, seedDiags...)
	doc.Seed = seed

	return diags
}

func (l *Loader) decodeVariable(block *hcl.Block, evalCtx *hcl.EvalContext) (*config.Variable, hcl.Diagnostics) {
	body, diags := block.Body.Content(variableBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	v := &config.Variable{
		Name:     block.Labels[0],
		Samples:  cty.NullVal(cty.Number),
		Location: block.DefRange.String(),
	}

	// Manually check for the required 'distribution' attribute for a better error.
	distAttr, ok := body.Attributes["distribution"]
	if !ok {
		missing := block.Body.MissingItemRange()
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'distribution' attribute",
			Detail:   "The 'distribution' attribute is required for all variable blocks.",
			Subject:  &missing,
		})
	}
	diags = append(diags, gohcl.DecodeExpression(distAttr.Expr, evalCtx, &v.Distribution)...)

	if attr, ok := body.Attributes["samples"]; ok {
		val, valDiags := attr.Expr.Value(evalCtx)
		diags = append(diags, valDiags...)
		if !valDiags.HasErrors() {
			v.Samples = val
		}
	}

	if attr, ok := body.Attributes["params"]; ok {
		params, paramDiags := objectAttributes(attr.Expr, evalCtx, "params")
		diags = append(diags, paramDiags...)
		v.Params = params
	}

	return v, diags
}

package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "scenario"},
		{Type: "variable", LabelNames: []string{"name"}},
	},
}

var scenarioBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "seed"},
	},
}

var variableBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `distribution` is required, but we check for its existence
		// manually to provide a better error message.
		{Name: "distribution"},
		{Name: "samples"},
		{Name: "params"},
	},
}

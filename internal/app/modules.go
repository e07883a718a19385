package app

import (
	"github.com/specialistvlad/randscenario/internal/registry"
	"github.com/specialistvlad/randscenario/modules/csv"
	"github.com/specialistvlad/randscenario/modules/hcl"
	"github.com/specialistvlad/randscenario/modules/json"
	"github.com/specialistvlad/randscenario/modules/toml"
	"github.com/specialistvlad/randscenario/modules/yaml"
)

// coreModules is the definitive list of all encoders that are compiled into
// the randscenario binary.
var coreModules = []registry.Module{
	&csv.Module{},
	&json.Module{},
	&toml.Module{},
	&yaml.Module{},
	&hcl.Module{},
}

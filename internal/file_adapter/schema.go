package file_adapter

// fileScenario is the decoding target shared by every tree format.
type fileScenario struct {
	Name      string          `toml:"name" yaml:"name" json:"name"`
	Seed      any             `toml:"seed" yaml:"seed" json:"seed"`
	Variables []*fileVariable `toml:"variable" yaml:"variables" json:"variables"`
}

type fileVariable struct {
	Name         string         `toml:"name" yaml:"name" json:"name"`
	Distribution string         `toml:"distribution" yaml:"distribution" json:"distribution"`
	Samples      any            `toml:"samples" yaml:"samples" json:"samples"`
	Params       map[string]any `toml:"params" yaml:"params" json:"params"`
}

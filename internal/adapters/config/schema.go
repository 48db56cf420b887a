package config

// Bakeryfile represents the structure of the bakery.toml configuration file.
type Bakeryfile struct {
	Project ProjectDTO    `toml:"project"`
	C       *StandardDTO  `toml:"c"`
	Cpp     *StandardDTO  `toml:"cpp"`
	GCC     *ArgumentsDTO `toml:"gcc"`
	GPP     *ArgumentsDTO `toml:"gpp"`
}

// ProjectDTO represents the [project] table.
type ProjectDTO struct {
	Name                     string          `toml:"name"`
	Description              string          `toml:"description"`
	Author                   string          `toml:"author"`
	Language                 string          `toml:"language"`
	Distribution             string          `toml:"distribution"`
	Sources                  []string        `toml:"sources"`
	Includes                 []string        `toml:"includes"`
	Dependencies             []DependencyDTO `toml:"dependencies"`
	Optimization             any             `toml:"optimization"`
	EnableAllWarnings        bool            `toml:"enableAllWarnings"`
	TreatAllWarningsAsErrors bool            `toml:"treatAllWarningsAsErrors"`
}

// DependencyDTO is either a local project ({path}) or a system library ({name}).
type DependencyDTO struct {
	Path string `toml:"path"`
	Name string `toml:"name"`
}

// StandardDTO represents the [c] and [cpp] tables.
type StandardDTO struct {
	Standard string `toml:"standard"`
}

// ArgumentsDTO represents the [gcc] and [gpp] tables.
type ArgumentsDTO struct {
	AdditionalPreArguments  []string `toml:"additionalPreArguments"`
	AdditionalPostArguments []string `toml:"additionalPostArguments"`
}

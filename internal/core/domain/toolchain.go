package domain

// ToolchainSettings holds the resolved locations of the external tools.
// An empty location means the tool could not be found.
type ToolchainSettings struct {
	CCompiler   string
	CppCompiler string
	Archiver    string
}

// CompileSettings parameterizes the compilation of one source file.
type CompileSettings struct {
	Distribution          Distribution
	CStandard             CStandard
	CppStandard           CppStandard
	Optimization          OptimizationLevel
	Includes              []string
	EnableAllWarnings     bool
	TreatWarningsAsErrors bool
	Arguments             ToolchainArguments
}

// LinkSettings parameterizes linking an executable or a dynamic library.
type LinkSettings struct {
	Distribution       Distribution
	Includes           []string
	Libraries          []string
	LibrarySearchPaths []string
}

// CompileSettingsFor derives the compile settings of p.
func CompileSettingsFor(p *Project) CompileSettings {
	return CompileSettings{
		Distribution:          p.Distribution,
		CStandard:             p.CStandard,
		CppStandard:           p.CppStandard,
		Optimization:          p.Optimization,
		Includes:              p.Includes,
		EnableAllWarnings:     p.EnableAllWarnings,
		TreatWarningsAsErrors: p.TreatWarningsAsErrors,
		Arguments:             p.Arguments(),
	}
}

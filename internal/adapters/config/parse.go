package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/zerr"
)

// settings are the values of a Bakeryfile after enumeration parsing and defaults.
type settings struct {
	language     domain.Language
	distribution domain.Distribution
	optimization domain.OptimizationLevel
	cStandard    domain.CStandard
	cppStandard  domain.CppStandard
	gcc          domain.ToolchainArguments
	gpp          domain.ToolchainArguments
}

// parse decodes data strictly: unknown keys are rejected.
func parse(data []byte) (*Bakeryfile, error) {
	var file Bakeryfile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigSyntax.Error())
	}
	return &file, nil
}

// resolveSettings validates the enumerated values of file and applies defaults.
func resolveSettings(file *Bakeryfile) (settings, error) {
	s := settings{
		distribution: domain.Executable,
		optimization: domain.OptimizationZero,
		cStandard:    domain.LatestCStandard,
		cppStandard:  domain.LatestCppStandard,
	}

	var ok bool
	if s.language, ok = domain.ParseLanguage(file.Project.Language); !ok {
		return s, invalidValue("language", file.Project.Language)
	}

	if file.Project.Distribution != "" {
		if s.distribution, ok = domain.ParseDistribution(file.Project.Distribution); !ok {
			return s, invalidValue("distribution", file.Project.Distribution)
		}
	}

	if file.Project.Optimization != nil {
		// Accept both optimization = "2" and optimization = 2.
		raw := fmt.Sprint(file.Project.Optimization)
		if s.optimization, ok = domain.ParseOptimizationLevel(raw); !ok {
			return s, invalidValue("optimization", raw)
		}
	}

	if file.C != nil && file.C.Standard != "" {
		if s.cStandard, ok = domain.ParseCStandard(file.C.Standard); !ok {
			return s, invalidValue("c.standard", file.C.Standard)
		}
	}

	if file.Cpp != nil && file.Cpp.Standard != "" {
		if s.cppStandard, ok = domain.ParseCppStandard(file.Cpp.Standard); !ok {
			return s, invalidValue("cpp.standard", file.Cpp.Standard)
		}
	}

	s.gcc = arguments(file.GCC)
	s.gpp = arguments(file.GPP)

	return s, nil
}

func arguments(dto *ArgumentsDTO) domain.ToolchainArguments {
	if dto == nil {
		return domain.ToolchainArguments{}
	}
	return domain.ToolchainArguments{
		Pre:  dto.AdditionalPreArguments,
		Post: dto.AdditionalPostArguments,
	}
}

func invalidValue(key, value string) error {
	return zerr.With(zerr.With(domain.ErrConfigSyntax, "key", key), "value", value)
}

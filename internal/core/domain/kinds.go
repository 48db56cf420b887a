package domain

import (
	"runtime"
	"strings"
)

// Language is the source language of a project.
type Language uint8

const (
	// LanguageC compiles sources as C.
	LanguageC Language = iota
	// LanguageCpp compiles sources as C++.
	LanguageCpp
)

// ParseLanguage parses the configuration spelling of a language.
func ParseLanguage(s string) (Language, bool) {
	switch s {
	case "c", "C":
		return LanguageC, true
	case "c++", "C++":
		return LanguageCpp, true
	default:
		return LanguageC, false
	}
}

// String returns the configuration spelling of the language.
func (l Language) String() string {
	if l == LanguageCpp {
		return "C++"
	}
	return "C"
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Distribution is the kind of build product of a project.
type Distribution uint8

const (
	// Executable is a program that can be run.
	Executable Distribution = iota
	// StaticLibrary is an archive of object files.
	StaticLibrary
	// DynamicLibrary is a shared object loaded at run time.
	DynamicLibrary
)

// ParseDistribution parses the configuration spelling of a distribution.
func ParseDistribution(s string) (Distribution, bool) {
	switch s {
	case "executable":
		return Executable, true
	case "staticLibrary":
		return StaticLibrary, true
	case "dynamicLibrary":
		return DynamicLibrary, true
	default:
		return Executable, false
	}
}

// String returns the configuration spelling of the distribution.
func (d Distribution) String() string {
	switch d {
	case StaticLibrary:
		return "staticLibrary"
	case DynamicLibrary:
		return "dynamicLibrary"
	default:
		return "executable"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Distribution) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// IsLibrary reports whether other projects may depend on the distribution.
func (d Distribution) IsLibrary() bool {
	return d == StaticLibrary || d == DynamicLibrary
}

// Extension returns the platform file extension of the artifact, without the dot.
func (d Distribution) Extension() string {
	windows := runtime.GOOS == "windows"
	switch d {
	case StaticLibrary:
		if windows {
			return "lib"
		}
		return "a"
	case DynamicLibrary:
		if windows {
			return "dll"
		}
		return "so"
	default:
		if windows {
			return "exe"
		}
		return ""
	}
}

// ArtifactName returns the file name of the artifact produced for a project called name.
func (d Distribution) ArtifactName(name string) string {
	if ext := d.Extension(); ext != "" {
		return name + "." + ext
	}
	return name
}

// OptimizationLevel is the optimization level requested from the compiler.
type OptimizationLevel uint8

// Optimization levels, mapped to -O0, -O1, -O2, -O3, -Ofast, -Os and -Og.
const (
	OptimizationZero OptimizationLevel = iota
	OptimizationOne
	OptimizationTwo
	OptimizationThree
	OptimizationFour
	OptimizationSize
	OptimizationDebug
)

var optimizationNames = [...]string{"0", "1", "2", "3", "4", "size", "debug"}

// ParseOptimizationLevel parses the configuration spelling of an optimization level.
func ParseOptimizationLevel(s string) (OptimizationLevel, bool) {
	for i, name := range optimizationNames {
		if strings.EqualFold(s, name) {
			return OptimizationLevel(i), true //nolint:gosec // bounded by the table
		}
	}
	return OptimizationZero, false
}

// String returns the configuration spelling of the optimization level.
func (o OptimizationLevel) String() string {
	if int(o) < len(optimizationNames) {
		return optimizationNames[o]
	}
	return optimizationNames[0]
}

// MarshalText implements encoding.TextMarshaler.
func (o OptimizationLevel) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// CStandard is a revision of the C language standard.
type CStandard string

// Supported C standards. The latest one is the default.
const (
	C89 CStandard = "89"
	C99 CStandard = "99"
	C11 CStandard = "11"
	C17 CStandard = "17"
	C20 CStandard = "20"
	C23 CStandard = "23"

	LatestCStandard = C23
)

// ParseCStandard parses the configuration spelling of a C standard.
func ParseCStandard(s string) (CStandard, bool) {
	switch std := CStandard(s); std {
	case C89, C99, C11, C17, C20, C23:
		return std, true
	default:
		return LatestCStandard, false
	}
}

// CppStandard is a revision of the C++ language standard.
type CppStandard string

// Supported C++ standards. The latest one is the default.
const (
	Cpp98 CppStandard = "98"
	Cpp03 CppStandard = "3"
	Cpp11 CppStandard = "11"
	Cpp14 CppStandard = "14"
	Cpp17 CppStandard = "17"
	Cpp20 CppStandard = "20"
	Cpp23 CppStandard = "23"
	Cpp26 CppStandard = "26"

	LatestCppStandard = Cpp26
)

// ParseCppStandard parses the configuration spelling of a C++ standard.
func ParseCppStandard(s string) (CppStandard, bool) {
	switch std := CppStandard(s); std {
	case Cpp98, Cpp03, Cpp11, Cpp14, Cpp17, Cpp20, Cpp23, Cpp26:
		return std, true
	default:
		return LatestCppStandard, false
	}
}

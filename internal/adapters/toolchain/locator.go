package toolchain

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"
	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainLocator = (*Locator)(nil)

const (
	settingsName = "config"
	settingsType = "toml"
	envPrefix    = "BAKERY"

	keyGCC = "gccLocation"
	keyGPP = "gppLocation"
	keyAr  = "arLocation"
)

// Locator reads the toolchain settings file from a directory.
//
// Every location can be overridden by BAKERY_GCCLOCATION, BAKERY_GPPLOCATION and
// BAKERY_ARLOCATION. An empty location is looked up on PATH.
type Locator struct {
	dir string
}

// NewLocator creates a locator reading dir/config.toml.
func NewLocator(dir string) *Locator {
	return &Locator{dir: dir}
}

// DefaultSettingsDir returns the bakery directory below the user configuration directory.
func DefaultSettingsDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrToolchainConfigFailed.Error())
	}
	return filepath.Join(base, "bakery"), nil
}

// SettingsPath returns the path of the settings file.
func (l *Locator) SettingsPath() string {
	return filepath.Join(l.dir, settingsName+"."+settingsType)
}

// Locate resolves the tool locations. The first call writes the default settings file.
func (l *Locator) Locate() (domain.ToolchainSettings, error) {
	v := viper.New()
	v.SetConfigName(settingsName)
	v.SetConfigType(settingsType)
	v.AddConfigPath(l.dir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyGCC, "")
	v.SetDefault(keyGPP, "")
	v.SetDefault(keyAr, "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return domain.ToolchainSettings{}, zerr.With(zerr.Wrap(err, domain.ErrToolchainConfigFailed.Error()), "path", l.SettingsPath())
		}
		if err := l.writeDefaults(v); err != nil {
			return domain.ToolchainSettings{}, err
		}
	}

	return domain.ToolchainSettings{
		CCompiler:   lookup(v.GetString(keyGCC), "gcc"),
		CppCompiler: lookup(v.GetString(keyGPP), "g++"),
		Archiver:    lookup(v.GetString(keyAr), "ar"),
	}, nil
}

func (l *Locator) writeDefaults(v *viper.Viper) error {
	if err := os.MkdirAll(l.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolchainConfigFailed.Error()), "path", l.dir)
	}
	if err := v.SafeWriteConfigAs(l.SettingsPath()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolchainConfigFailed.Error()), "path", l.SettingsPath())
	}
	return nil
}

// lookup resolves configured, or fallback when nothing is configured, to an executable.
// It returns "" when nothing can be found.
func lookup(configured, fallback string) string {
	name := configured
	if name == "" {
		name = fallback
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

// Package settings resolves tool settings from flags, the environment and defaults.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "KILN"

// Setting keys, shared by flags and environment variables.
const (
	KeyRegistry = "registry"
	KeyCompiler = "compiler"
	KeyWarnings = "warnings"
	KeyJSON     = "json"
	KeyForce    = "force"
)

// DefaultCompiler is the compiler executable used when none is configured.
const DefaultCompiler = "javac"

// Settings are the resolved tool settings for one invocation.
type Settings struct {
	RegistryRoot string
	Compiler     string
	Warnings     domain.WarningsPolicy
	JSON         bool
	Force        bool
}

// Loader layers settings: flags over KILN_* environment variables over defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults applied.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRegistry, domain.DefaultRegistryPath())
	v.SetDefault(KeyCompiler, DefaultCompiler)
	v.SetDefault(KeyWarnings, string(domain.WarningsShow))
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyForce, false)

	return &Loader{v: v}
}

// BindFlags binds every known setting to the command's flag of the same name.
// Settings without a flag on cmd keep their environment or default value.
func (l *Loader) BindFlags(cmd *cobra.Command) error {
	for _, key := range []string{KeyRegistry, KeyCompiler, KeyWarnings, KeyJSON, KeyForce} {
		flag := cmd.Flags().Lookup(key)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to bind flag"), "flag", key)
		}
	}
	return nil
}

// LoadEnvFile loads <root>/.env into the process environment. Variables that are
// already set win over the file. A missing file is not an error.
func LoadEnvFile(root string) error {
	path := filepath.Join(root, domain.EnvFileName)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to load environment file"), "path", path)
	}
	return nil
}

// Load resolves the settings. Call LoadEnvFile first so project pinned variables apply.
func (l *Loader) Load() (*Settings, error) {
	policy, err := domain.ParseWarningsPolicy(l.v.GetString(KeyWarnings))
	if err != nil {
		return nil, err
	}

	registry := strings.TrimSpace(l.v.GetString(KeyRegistry))
	if strings.HasPrefix(registry, "~"+string(os.PathSeparator)) {
		if home, err := os.UserHomeDir(); err == nil {
			registry = filepath.Join(home, registry[2:])
		}
	}

	compiler := strings.TrimSpace(l.v.GetString(KeyCompiler))
	if compiler == "" {
		compiler = DefaultCompiler
	}

	return &Settings{
		RegistryRoot: registry,
		Compiler:     compiler,
		Warnings:     policy,
		JSON:         l.v.GetBool(KeyJSON),
		Force:        l.v.GetBool(KeyForce),
	}, nil
}

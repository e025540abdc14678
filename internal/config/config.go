package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

// InvalidConfigCode tags configuration errors.
const InvalidConfigCode = "INVALID_CONFIG"

// Environment variables read by Load.
const (
	EnvObjects   = "METADOC_OBJECTS"
	EnvOutputDir = "METADOC_OUTPUT_DIR"
	EnvBasePath  = "METADOC_BASE_PATH"
	EnvDebug     = "METADOC_DEBUG"
	EnvFormat    = "METADOC_FORMAT"
	EnvTemplates = "METADOC_TEMPLATES"
	EnvStrict    = "METADOC_STRICT"
	EnvSanitize  = "METADOC_SANITIZE"
	EnvLogFormat = "METADOC_LOG_FORMAT"
	EnvConfig    = "METADOC_CONFIG"
)

const (
	DefaultOutputDir = "docs/"
	DefaultBasePath  = "force-app/main/default/"
	DefaultFormat    = "markdown"
	DefaultLogFormat = "console"
)

var envBindings = [][2]string{
	{"objects", EnvObjects},
	{"output-dir", EnvOutputDir},
	{"base-path", EnvBasePath},
	{"debug", EnvDebug},
	{"format", EnvFormat},
	{"templates", EnvTemplates},
	{"strict", EnvStrict},
	{"sanitize", EnvSanitize},
	{"log-format", EnvLogFormat},
}

// Formats lists the renderer names accepted by Validate.
var Formats = []string{"markdown", "html", "template"}

// LogFormats lists the logger output formats accepted by Validate.
var LogFormats = []string{"console", "json", "pretty"}

// Config holds the settings of a documentation run.
type Config struct {
	Objects     string `yaml:"objects"`
	OutputDir   string `yaml:"output_dir"`
	BasePath    string `yaml:"base_path"`
	Debug       bool   `yaml:"debug"`
	Format      string `yaml:"format"`
	Templates   string `yaml:"templates"`
	Strict      bool   `yaml:"strict"`
	Sanitize    bool   `yaml:"sanitize"`
	LogFormat   string `yaml:"log_format"`
	Interactive bool   `yaml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		BasePath:  DefaultBasePath,
		Format:    DefaultFormat,
		LogFormat: DefaultLogFormat,
	}
}

// Load layers the YAML file at path (when set, or named by METADOC_CONFIG)
// and the environment over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the keys present in the YAML document at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return invalid(fmt.Errorf("config: decode %s: %w", path, err))
	}
	return nil
}

// ApplyEnv overlays non-empty METADOC_* variables resolved through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, binding := range envBindings {
		name, env := binding[0], binding[1]
		value, ok := lookup(env)
		if !ok || value == "" {
			continue
		}
		if err := c.Set(name, value); err != nil {
			return fmt.Errorf("config: %s: %w", env, err)
		}
	}
	return nil
}

// Set assigns the setting named like its command line flag.
func (c *Config) Set(name, value string) error {
	switch name {
	case "objects":
		c.Objects = value
	case "output-dir":
		c.OutputDir = value
	case "base-path":
		c.BasePath = value
	case "format":
		c.Format = strings.ToLower(strings.TrimSpace(value))
	case "templates":
		c.Templates = value
	case "log-format":
		c.LogFormat = strings.ToLower(strings.TrimSpace(value))
	case "debug", "strict", "sanitize", "interactive":
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return invalid(fmt.Errorf("config: %s: %w", name, err))
		}
		switch name {
		case "debug":
			c.Debug = enabled
		case "strict":
			c.Strict = enabled
		case "sanitize":
			c.Sanitize = enabled
		default:
			c.Interactive = enabled
		}
	default:
		return fmt.Errorf("config: unknown setting %q", name)
	}
	return nil
}

// Validate checks the settings a run depends on. Objects is required unless
// the run is interactive.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Objects, validation.When(!c.Interactive, validation.Required.Error("objects is required (\"all\" or a comma separated list)"))),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.BasePath, validation.Required),
		validation.Field(&c.Format, validation.Required, validation.In(toAny(Formats)...)),
		validation.Field(&c.LogFormat, validation.Required, validation.In(toAny(LogFormats)...)),
		validation.Field(&c.Templates, validation.By(func(value any) error {
			dir, _ := value.(string)
			if dir == "" {
				return nil
			}
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				return validation.NewError("metadoc.config.templates_dir", "must be an existing directory")
			}
			return nil
		})),
	)
	if err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
		WithTextCode(InvalidConfigCode)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

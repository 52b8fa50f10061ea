// Package config loads the YAML configuration of the numlit command.
//
// Values are decoded over Default, so a file only needs the keys it
// changes, and are checked with validator struct tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrValidation is wrapped by every error Validate returns.
var ErrValidation = errors.New("validation error")

// Config is the complete command configuration.
type Config struct {
	Parse   ParseConfig   `yaml:"parse"`
	Scan    ScanConfig    `yaml:"scan"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	S3      S3Config      `yaml:"s3"`
	MinIO   MinIOConfig   `yaml:"minio"`
}

// ParseConfig holds the conversion parameters.
type ParseConfig struct {
	Base          int  `yaml:"base" validate:"eq=0|min=2,max=36"`
	BitSize       int  `yaml:"bit_size" validate:"min=0,max=64"`
	NativeBitSize int  `yaml:"native_bit_size" validate:"oneof=32 64"`
	Unsigned      bool `yaml:"unsigned"`
}

// ScanConfig bounds bulk conversion.
type ScanConfig struct {
	Concurrency        int    `yaml:"concurrency" validate:"min=0"`
	ChunkSize          int    `yaml:"chunk_size" validate:"min=0"`
	MaxConcurrentReads int64  `yaml:"max_concurrent_reads" validate:"min=0"`
	MemoryLimitBytes   int64  `yaml:"memory_limit_bytes" validate:"min=0"`
	IOLimitBytesPerSec int64  `yaml:"io_limit_bytes_per_sec" validate:"min=0"`
	Format             string `yaml:"format" validate:"oneof=json go-json go-json-indent"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// S3Config configures the AWS client used for s3:// URIs.
type S3Config struct {
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint" validate:"omitempty,url"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// MinIOConfig configures the client used for minio:// URIs.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	AccessKey string `yaml:"access_key" validate:"required_with=SecretKey"`
	SecretKey string `yaml:"secret_key" validate:"required_with=AccessKey"`
	Secure    bool   `yaml:"secure"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Parse: ParseConfig{
			NativeBitSize: 64,
		},
		Scan: ScanConfig{
			MaxConcurrentReads: 4,
			Format:             "go-json-indent",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is Decode on a byte slice.
func Parse(data []byte) (Config, error) {
	return Decode(bytes.NewReader(data))
}

// Validate checks every field against its constraints and reports all
// violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	errs := make([]error, 0, len(valErrs))
	for _, e := range valErrs {
		detail := e.ActualTag()
		if e.Param() != "" {
			detail += ":" + e.Param()
		}
		errs = append(errs, fmt.Errorf("%w: %s: require %q", ErrValidation, e.Namespace(), detail))
	}
	return errors.Join(errs...)
}

// LogLevel maps Log.Level to a slog level.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

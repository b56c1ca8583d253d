package conf

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gostonefire/hashdb/hashfunc"
	"gopkg.in/yaml.v3"
	"io/fs"
	"log/slog"
	"os"
)

// Config - Driver configuration, read from a YAML file
//   - HashAlgorithm is the built-in hash algorithm used for files created by the driver
//   - RecordSize is the record size for files created by the driver, zero means the width of a vehicle
//   - LogLevel is the minimum level logged
//   - LogFormat selects a text or JSON log handler
type Config struct {
	HashAlgorithm string `yaml:"hash_algorithm" validate:"oneof=charsum crc32 xxhash"`
	RecordSize    int64  `yaml:"record_size" validate:"min=0,max=4194304"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat     string `yaml:"log_format" validate:"oneof=text json"`
}

var validate = validator.New()

// Default - Returns the configuration used when no file is given
func Default() Config {
	return Config{
		HashAlgorithm: hashfunc.CharSum.String(),
		RecordSize:    0,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load - Reads configuration from a YAML file on top of the defaults. An empty fileName returns the defaults.
func Load(fileName string) (config Config, err error) {
	config = Default()
	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("config file %s not found", fileName)
			return
		}
		err = fmt.Errorf("unable to read config file: %w", err)
		return
	}

	config, err = Parse(data)

	return
}

// Parse - Decodes YAML configuration on top of the defaults and validates it
func Parse(data []byte) (config Config, err error) {
	config = Default()

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		err = fmt.Errorf("unable to parse config: %w", err)
		return
	}

	err = config.Validate()

	return
}

// Validate - Checks the configuration against its constraints
func (C Config) Validate() (err error) {
	err = validate.Struct(C)
	if err != nil {
		err = fmt.Errorf("invalid config: %w", err)
	}

	return
}

// Algorithm - Returns the configured hash algorithm id
func (C Config) Algorithm() hashfunc.Internal {
	internal, ok := hashfunc.ParseInternal(C.HashAlgorithm)
	if !ok {
		return hashfunc.CharSum
	}
	return internal
}

// Level - Returns the configured log level
func (C Config) Level() slog.Level {
	switch C.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

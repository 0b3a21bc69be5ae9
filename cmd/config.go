package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the service.
const EnvPrefix = "PARCELS"

const (
	keyHTTPPort                = "http_port"
	keyLogLevel                = "log_level"
	keyLogFormat               = "log_format"
	keyLogOutput               = "log_output"
	keyContainerStatusSchedule = "container_status_schedule"
	keySeedDepartments         = "seed_departments"
)

type Config struct {
	HTTPPort                string
	LogLevel                string // debug, info, warn, error
	LogFormat               string // json, console
	LogOutput               string // stdout, stderr, or file path
	ContainerStatusSchedule string
	SeedDepartments         bool
}

// NewViper returns a viper instance reading PARCELS_* environment variables
// with the service defaults applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyHTTPPort, "8080")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyLogOutput, "stdout")
	v.SetDefault(keyContainerStatusSchedule, "*/5 * * * * *")
	v.SetDefault(keySeedDepartments, true)
	return v
}

// LoadDotEnv loads variables from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig builds the Config from v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort:                strings.TrimSpace(v.GetString(keyHTTPPort)),
		LogLevel:                v.GetString(keyLogLevel),
		LogFormat:               v.GetString(keyLogFormat),
		LogOutput:               v.GetString(keyLogOutput),
		ContainerStatusSchedule: v.GetString(keyContainerStatusSchedule),
		SeedDepartments:         v.GetBool(keySeedDepartments),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the port and the cron schedule.
func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("http port is required"))
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.ContainerStatusSchedule); err != nil {
		errList = append(errList, fmt.Errorf("container status schedule %q: %w", c.ContainerStatusSchedule, err))
	}
	return errors.Join(errList...)
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	// HumanPlayer is the seat (1 or 2) the person at the console plays.
	// If 0, they are asked at the start of each game.
	HumanPlayer int    `yaml:"human-player" env:"FIFTEEN_HUMAN_PLAYER" env-default:"0" env-description:"seat played by the human: 1, 2, or 0 to ask"`
	DebugAddr   string `yaml:"debug-addr" env:"FIFTEEN_DEBUG_ADDR" env-description:"address to serve pprof and expvar on, empty to disable"`
	Redis       Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"FIFTEEN_REDIS_ENABLED" env-default:"false" env-description:"record finished games in redis"`
	Host    string        `yaml:"host" env:"FIFTEEN_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"FIFTEEN_REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"FIFTEEN_REDIS_TTL" env-default:"0s" env-description:"expiry of stored game records, 0 to keep forever"`
}

// Load reads the configuration from the YAML file at path, if given,
// and then from the environment. Environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, errors.Wrap(err, "unable to load config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load configuration, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.HumanPlayer < 0 || that.HumanPlayer > 2 {
		return fmt.Errorf("human-player must be 0, 1 or 2, got %d", that.HumanPlayer)
	}

	if that.Redis.TTL < 0 {
		return fmt.Errorf("redis ttl must not be negative, got %v", that.Redis.TTL)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Usage returns a flag.Usage function that also describes the
// environment variables read by Load.
func Usage(usage func()) func() {
	header := "Environment variables:"
	return cleanenv.Usage(&Config{}, &header, usage)
}

/*
config.go - Service configuration

PURPOSE:
  Loads configuration from a YAML file and/or the environment via cleanenv.
  Every setting carries a default, so the server starts with no config file
  at all; a file given through CONFIG_PATH or the -config flag overrides the
  defaults, and environment variables override the file.
*/
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// HTTPServer holds the listener settings.
type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Scheduler holds the nightly refresh settings.
type Scheduler struct {
	Enabled bool `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"true"`
}

// Config is the root configuration.
type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"dev"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"leave.db"`

	HTTPServer HTTPServer `yaml:"http_server"`
	Scheduler  Scheduler  `yaml:"scheduler"`
}

// MustLoad loads the configuration or exits. The config file path comes from
// the CONFIG_PATH environment variable, then the -config flag; with neither
// set, defaults and environment variables apply.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the configuration file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			log.Fatalf("config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config file: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %v", err)
	}
	return &cfg
}

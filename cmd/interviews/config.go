package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/interviews/internal/api"
	"github.com/nikmy/interviews/internal/interviews"
	"github.com/nikmy/interviews/internal/repo"
	"github.com/nikmy/interviews/pkg/environment"
	"github.com/nikmy/interviews/pkg/errors"
)

const (
	envMongoURI = "MONGO_URI"
	envPort     = "PORT"

	defaultPort = "5001"
)

type Config struct {
	Environment environment.Env   `yaml:"Environment"`
	API         api.Config        `yaml:"API"`
	Mongo       repo.MongoConfig  `yaml:"Mongo"`
	Interviews  interviews.Config `yaml:"Interviews"`
}

type flags struct {
	configPath string
	env        string
}

func parseFlags(args []string) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("interviews", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "config.yaml", "path to yaml config")
	fs.StringVar(&f.env, "env", "", "environment (dev, prod)")

	err := fs.Parse(args)
	if err != nil {
		return flags{}, errors.WrapFail(err, "parse flags")
	}

	return f, nil
}

// loadConfig reads .env and the yaml file, both optional, then applies
// environment overrides and flags on top.
func loadConfig(f flags) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	path, err := filepath.Abs(f.configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, errors.WrapFailf(err, "read %q", path)
	default:
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, errors.WrapFail(err, "parse yaml")
		}
	}

	if uri := os.Getenv(envMongoURI); uri != "" {
		cfg.Mongo.URL = uri
	}

	switch port := os.Getenv(envPort); {
	case port != "":
		cfg.API.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	case cfg.API.HTTP.Addr == "":
		cfg.API.HTTP.Addr = ":" + defaultPort
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	return &cfg, nil
}

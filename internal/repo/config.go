package repo

import (
	"time"
)

type MongoConfig struct {
	URL            string        `yaml:"url"`
	Timeout        time.Duration `yaml:"timeout"`
	ConnectTimeout time.Duration `yaml:"connectTimeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

const (
	DefaultMongoURL   = "mongodb://localhost:27017"
	DefaultCollection = "interviews"
)

func (c MongoConfig) WithDefaults() MongoConfig {
	if c.URL == "" {
		c.URL = DefaultMongoURL
	}
	if c.Collection == "" {
		c.Collection = DefaultCollection
	}
	return c
}

package mongodb

import "time"

type Config struct {
	URL            string
	Timeout        time.Duration
	ConnectTimeout time.Duration

	Database   string
	Collection string

	Auth struct {
		Username string
		Password string
	}

	Pool struct {
		MinSize uint64
		MaxSize uint64
	}
}

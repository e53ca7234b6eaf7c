package interviews

type Config struct {
	Meetings MeetingsConfig `yaml:"Meetings"`
}

type MeetingsConfig struct {
	BaseURL string `yaml:"baseURL"`
	Prefix  string `yaml:"prefix"`
}

const (
	DefaultMeetingsBaseURL = "https://meet.jit.si"
	DefaultMeetingsPrefix  = "Meeting-"
)

func (c MeetingsConfig) withDefaults() MeetingsConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultMeetingsBaseURL
	}
	if c.Prefix == "" {
		c.Prefix = DefaultMeetingsPrefix
	}
	return c
}

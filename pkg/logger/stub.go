package logger

// NewStub returns a logger that drops everything.
func NewStub() Logger {
	return stubLogger{}
}

type stubLogger struct{}

func (s stubLogger) With(string) Logger {
	return s
}

func (s stubLogger) WithFields(...any) Logger {
	return s
}

func (s stubLogger) Debugf(string, ...any) {}

func (s stubLogger) Infof(string, ...any) {}

func (s stubLogger) Warnf(string, ...any) {}

func (s stubLogger) Errorf(string, ...any) {}

func (s stubLogger) Debug(error) {}

func (s stubLogger) Info(error) {}

func (s stubLogger) Warn(error) {}

func (s stubLogger) Error(error) {}

func (s stubLogger) Panic(err error) {
	panic(err)
}

func (s stubLogger) Sync() error {
	return nil
}

package cliconfig

// Defaults.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultIndent    = 2
)

// NewDefault returns a Config holding only default values.
func NewDefault() *Config {
	indent := DefaultIndent
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Indent:    &indent,
		Sources: map[string]string{
			KeyLogLevel:  SourceDefault,
			KeyLogFormat: SourceDefault,
			KeyIndent:    SourceDefault,
		},
	}
}

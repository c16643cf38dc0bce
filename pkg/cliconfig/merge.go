package cliconfig

// MergeConfig copies every value set in source onto target and records
// sourceType as its origin.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources[KeyLogLevel] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources[KeyLogFormat] = sourceType
	}
	if source.Seed != nil {
		seed := *source.Seed
		target.Seed = &seed
		target.Sources[KeySeed] = sourceType
	}
	if source.Indent != nil {
		indent := *source.Indent
		target.Indent = &indent
		target.Sources[KeyIndent] = sourceType
	}
}

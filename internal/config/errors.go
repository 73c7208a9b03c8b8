package config

// ConfigError reports a malformed or inconsistent config.json document.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Reason
}

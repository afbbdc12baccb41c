package conf

// The process-wide instance is deliberately explicit state rather than a
// lazily created singleton: an application that wants one installs it once
// at startup, before any other goroutine reads configuration, and resets it
// at shutdown (or in tests). Access is not synchronized.
//
//nolint:gochecknoglobals // explicit, documented process-wide state.
var global *Config

// SetGlobal installs the process-wide Config instance. Call it once during
// startup, before any call to Global.
func SetGlobal(c *Config) {
	global = c
}

// Global returns the process-wide Config instance, or nil if SetGlobal has
// not been called.
func Global() *Config {
	return global
}

// ResetGlobal removes the process-wide Config instance. Intended for
// shutdown and for tests that install their own instance.
func ResetGlobal() {
	global = nil
}

// Package config loads the preload rules and build settings.
//
// Values are layered with koanf: built-in defaults first, then the first
// config file found (injectpreload.toml, .injectpreload.toml,
// injectpreload.yaml, injectpreload.yml) or an explicit path, then
// INJECTPRELOAD_* environment variables. The result decodes into Config,
// which compiles into the read-only types.Configuration the injector uses.
package config

/*
Package config defines the core domain entity for the optional shell
configuration.
*/
package config

// DefaultPrompt is written before every read when nothing else is configured.
const DefaultPrompt = "> "

// Alias maps a short name to the command line it expands to.
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Config holds the user configuration loaded at startup.
type Config struct {
	Prompt  string  `yaml:"prompt"`
	NoColor bool    `yaml:"no_color"`
	Aliases []Alias `yaml:"aliases"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{Prompt: DefaultPrompt}
}

// AliasMap returns the aliases keyed by name. A later duplicate wins.
func (c Config) AliasMap() map[string]string {
	aliases := make(map[string]string, len(c.Aliases))
	for _, a := range c.Aliases {
		aliases[a.Name] = a.Command
	}
	return aliases
}

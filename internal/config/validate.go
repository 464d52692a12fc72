package config

import "fmt"

var validProviders = map[string]bool{
	"gemini":    true,
	"openai":    true,
	"anthropic": true,
}

var validNotebookDrivers = map[string]bool{
	"file":   true,
	"sqlite": true,
}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if !validProviders[c.Provider.Name] {
		return fmt.Errorf("provider.name %q is not one of gemini, openai, anthropic", c.Provider.Name)
	}
	if c.Provider.TextModel == "" {
		return fmt.Errorf("provider.text_model must not be empty")
	}
	if !validNotebookDrivers[c.Notebook.Driver] {
		return fmt.Errorf("notebook.driver %q is not one of file, sqlite", c.Notebook.Driver)
	}
	if c.Notebook.Path == "" {
		return fmt.Errorf("notebook.path must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	return nil
}

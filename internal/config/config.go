package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Notebook NotebookConfig `yaml:"notebook"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ProviderConfig selects and configures the generative AI provider.
//
// Name is one of: gemini, openai, anthropic. The anthropic provider has no
// image model: illustrations are silently disabled when it is selected.
// BaseURL is only honoured by the openai provider (OpenAI-compatible
// gateways such as DeepSeek).
type ProviderConfig struct {
	Name       string `yaml:"name"        env:"PROVIDER_NAME"        env-default:"gemini"`
	APIKey     string `yaml:"api_key"     env:"PROVIDER_API_KEY"     env-required:"true"`
	TextModel  string `yaml:"text_model"  env:"PROVIDER_TEXT_MODEL"  env-default:"gemini-2.5-flash"`
	ImageModel string `yaml:"image_model" env:"PROVIDER_IMAGE_MODEL" env-default:"imagen-4.0-generate-001"`
	BaseURL    string `yaml:"base_url"    env:"PROVIDER_BASE_URL"`
}

// NotebookConfig holds notebook persistence settings.
//
// Driver "file" keeps the whole collection as one JSON document at Path;
// driver "sqlite" keeps it under a single key in an SQLite database at Path.
// Both rewrite the full collection on every mutation.
type NotebookConfig struct {
	Driver string `yaml:"driver" env:"NOTEBOOK_DRIVER" env-default:"file"`
	Path   string `yaml:"path"   env:"NOTEBOOK_PATH"   env-default:"./meme_translator_notebook.json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Path is the fixed, working-directory-relative location of the config file.
const Path = "config.yaml"

// Config holds application configuration loaded from config.yaml.
type Config struct {
	ServerPort  string `yaml:"server_port" env:"SERVER_PORT" env-default:"8080"`
	Username    string `yaml:"username" env-required:"true"`
	Password    string `yaml:"password" env-required:"true"`
	Host        string `yaml:"host" env-required:"true"`
	DBPort      int    `yaml:"dbport" env-required:"true"`
	APIPassword string `yaml:"api_password" env-required:"true"`
	StaticDir   string `yaml:"static_dir" env-default:"site/dist"`
}

// Load reads and validates the config file. A missing file or a missing
// required key is a fatal misconfiguration for the caller to act on.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(Path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", Path, err)
	}
	return &cfg, nil
}

// MongoURI builds the document store connection string from the connection keys.
func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.Username, c.Password, c.Host, c.DBPort)
}

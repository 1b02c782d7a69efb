package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Upstream struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"upstream"`

	Client struct {
		ProxyURL string `yaml:"proxyURL"`
		Language string `yaml:"language"`
	} `yaml:"client"`

	Storage struct {
		Path      string `yaml:"path"`
		Namespace string `yaml:"namespace"`
	} `yaml:"storage"`
}

// Load reads the config file and applies defaults. The upstream API key may
// also come from OPENAI_API_KEY so the file never has to hold a secret.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// No file: run on defaults and environment.
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Upstream.APIKey == "" {
		cfg.Upstream.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Upstream.Model == "" {
		cfg.Upstream.Model = "gpt-4o-mini"
	}
	if cfg.Client.ProxyURL == "" {
		cfg.Client.ProxyURL = "http://localhost:5000"
	}
	if cfg.Storage.Path == "" {
		home, _ := os.UserHomeDir()
		cfg.Storage.Path = filepath.Join(home, ".medicode", "medicode.db")
	}
	if cfg.Storage.Namespace == "" {
		cfg.Storage.Namespace = "MediCode"
	}

	return &cfg, nil
}

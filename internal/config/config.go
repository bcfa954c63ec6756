package config

import (
	"os"
	"path"
	"slices"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	ListenPort int    `yaml:"listen_port"`
	LogLevel   string `yaml:"log_level"`
	LogJSON    bool   `yaml:"log_json"`
	// Secure should be set when the service is reached over HTTPS; enables HSTS.
	Secure bool  `yaml:"secure"`
	Forum  Forum `yaml:"forum"`
	// Admins lists application-level administrators. Operations acting on
	// behalf of these users are performed upstream as the system identity.
	Admins                []string `yaml:"admins"`
	AllowedOrigins        []string `yaml:"allowed_origins"`
	MaxUploadSize         int64    `yaml:"max_upload_size"`
	AllowedImageMimeTypes []string `yaml:"allowed_image_mime_types"`
}

type Forum struct {
	BaseURL        string `yaml:"base_url"`
	SystemUsername string `yaml:"system_username"`
}

type Private struct {
	ForumAPIKey string `yaml:"forum_api_key"`
}

func (c *Config) ForumAPIKey() string {
	return c.private.ForumAPIKey
}

// IsAdmin reports whether username belongs to an application administrator.
// Matching is exact and case-sensitive.
func (c *Config) IsAdmin(username string) bool {
	return slices.Contains(c.Public.Admins, username)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.mustValidate()
	return cfg
}

func (c *Config) mustValidate() {
	if c.Public.Forum.BaseURL == "" {
		panic("config: forum.base_url is required")
	}
	if c.Public.Forum.SystemUsername == "" {
		panic("config: forum.system_username is required")
	}
	if c.private.ForumAPIKey == "" {
		panic("config: forum_api_key is required")
	}
}

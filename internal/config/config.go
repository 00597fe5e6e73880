package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port               int           `yaml:"port"`
	JwtTTL             time.Duration `yaml:"jwt_ttl"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func (p *Public) validate() {
	if p.Port == 0 {
		panic("config: port is required")
	}
	if p.JwtTTL == 0 {
		panic("config: jwt_ttl is required")
	}
}

func (p *Private) validate() {
	if p.JwtKey == "" {
		panic("config: jwt_key is required")
	}
	if p.Pg.Host == "" || p.Pg.Dbname == "" {
		panic(fmt.Sprintf("config: pg connection is incomplete: %+v", p.Pg))
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	public.validate()

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	private.validate()

	return &Config{public, private}
}

package devops

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// StorageConfig selects the KV backing for the record store.
type StorageConfig struct {
	// Backend is one of: memory, file, redis, mysql.
	Backend       string `yaml:"backend"`
	Dir           string `yaml:"dir"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MysqlDSN      string `yaml:"mysqlDSN"`
}

type SlackConfig struct {
	Token        string `yaml:"token"`
	InfoChannel  string `yaml:"infoChannel"`
	ErrorChannel string `yaml:"errorChannel"`
}

type Config struct {
	Listen            string        `yaml:"listen"`
	JWTSecret         string        `yaml:"jwtSecret"`
	SessionTTLSeconds int64         `yaml:"sessionTTLSeconds"`
	LogFile           string        `yaml:"logFile"`
	Storage           StorageConfig `yaml:"storage"`
	Slack             *SlackConfig  `yaml:"slack"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// LoadConfig reads the YAML config once, from $ATTEND_CONFIG or
// ./attendance.yaml. A missing file yields the defaults; env vars fill in the
// secret so it never has to live in the file.
func LoadConfig() (*Config, error) {
	once.Do(func() {
		path := os.Getenv("ATTEND_CONFIG")
		if path == "" {
			path = "attendance.yaml"
		}

		parsed := defaults()

		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// run on defaults
		case err != nil:
			loadErr = fmt.Errorf("read config %s: %w", path, err)
			return
		default:
			if err := yaml.Unmarshal(raw, parsed); err != nil {
				loadErr = fmt.Errorf("unmarshal yaml: %w", err)
				return
			}
		}

		if secret := os.Getenv("JWT_SECRET"); secret != "" {
			parsed.JWTSecret = secret
		}

		cfg = parsed
	})

	return cfg, loadErr
}

func defaults() *Config {
	return &Config{
		Listen:            ":8090",
		JWTSecret:         "development-only-secret",
		SessionTTLSeconds: 86400,
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "data",
		},
	}
}

package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Game   GameConfig   `mapstructure:"game"`
	Web    WebConfig    `mapstructure:"web"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

type GameConfig struct {
	// BotDelay is the artificial thinking time before a non-human seat
	// acts. The queued decision is dropped if the state changes first.
	BotDelay time.Duration `mapstructure:"bot_delay"`
	// Seed fixes the shuffle for reproduction runs; 0 means random.
	Seed int64 `mapstructure:"seed"`
}

type WebConfig struct {
	Dist string `mapstructure:"dist"`
}

// Load reads the YAML config at path, falling back to defaults when no
// path is given. Environment variables prefixed MARAFONE_ override file
// values (e.g. MARAFONE_SERVER_ADDR).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("game.bot_delay", 3*time.Second)
	v.SetDefault("game.seed", 0)
	v.SetDefault("web.dist", filepath.Join("web", "dist"))

	v.SetEnvPrefix("MARAFONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Package config loads the settings shared by the treeviz commands.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jeffwilliams/treeviz/playback"
)

const (
	KeyTree     = "tree"
	KeyKind     = "kind"
	KeyMethod   = "method"
	KeyPause    = "pause"
	KeyLogLevel = "log.level"

	EnvPrefix = "TREEVIZ"

	// DefaultTree is the n-ary tree 2(1 4(3 5)).
	DefaultTree = "[2, null, 1, 4, null, null, 3, 5]"
)

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Tree   string        `mapstructure:"tree"`
	Kind   string        `mapstructure:"kind"`
	Method string        `mapstructure:"method"`
	Pause  time.Duration `mapstructure:"pause"`
	Log    LogConfig     `mapstructure:"log"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTree, DefaultTree)
	v.SetDefault(KeyKind, "nary")
	v.SetDefault(KeyMethod, "preorder")
	v.SetDefault(KeyPause, playback.DefaultPause)
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads the configuration from v. If path is not empty the file is read
// first; values from the environment (TREEVIZ_PAUSE, TREEVIZ_LOG_LEVEL, ...)
// and from flags bound to v take precedence over it.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if conf.Pause <= 0 {
		return nil, errors.Errorf("pause must be positive, got %s", conf.Pause)
	}
	return conf, nil
}

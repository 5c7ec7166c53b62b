package store

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk pick history.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the history path from a .monthpick config file
// or the MONTHPICK_HISTORY_PATH environment variable, defaulting to
// ~/.monthpick.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("history_path", "~/.monthpick.db")
	viper.SetConfigName(".monthpick") // .yaml is implicit
	viper.SetEnvPrefix("MONTHPICK")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("history_path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

// PathConfig returns a Config pinned to path, bypassing LoadConfig.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

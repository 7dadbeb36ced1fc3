package config

import (
	"github.com/spf13/viper"
)

// Config is the top-level structure of config.yaml.
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Database Database `mapstructure:"database"`
	Storage  Storage  `mapstructure:"storage"`
}

// Database holds the sqlite settings.
type Database struct {
	Path string `mapstructure:"path"`
}

// Storage holds the attachment store settings.
type Storage struct {
	TempDir string `mapstructure:"temp_dir"`
}

var Cfg Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("database.path", "./data/predlojka.db")
	viper.SetDefault("storage.temp_dir", "./temp")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}

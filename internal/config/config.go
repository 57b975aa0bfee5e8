package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Fretboard FretboardConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DataConfig struct {
	Dir string
}

type FretboardConfig struct {
	Frets int // default fret count when a request does not specify one
}

type CORSConfig struct {
	Origins string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("fretboard.frets", 24)
	viper.SetDefault("cors.origins", "*")

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("server.port"),
			Env:  viper.GetString("server.env"),
		},
		Data: DataConfig{
			Dir: viper.GetString("data.dir"),
		},
		Fretboard: FretboardConfig{
			Frets: viper.GetInt("fretboard.frets"),
		},
		CORS: CORSConfig{
			Origins: viper.GetString("cors.origins"),
		},
	}

	return cfg, nil
}

package main

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// config holds the object-store credentials cogcat needs to open a
// remote COG, loaded from environment variables or a local .env file.
type config struct {
	Backend     string `mapstructure:"COGCAT_BACKEND"` // "fs", "http", or "s3"
	S3Endpoint  string `mapstructure:"COGCAT_S3_ENDPOINT"`
	S3AccessKey string `mapstructure:"COGCAT_S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"COGCAT_S3_SECRET_KEY"`
	S3Bucket    string `mapstructure:"COGCAT_S3_BUCKET"`
	S3Secure    bool   `mapstructure:"COGCAT_S3_SECURE"`
}

func loadConfig() *config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("COGCAT_BACKEND")
	viper.BindEnv("COGCAT_S3_ENDPOINT")
	viper.BindEnv("COGCAT_S3_ACCESS_KEY")
	viper.BindEnv("COGCAT_S3_SECRET_KEY")
	viper.BindEnv("COGCAT_S3_BUCKET")
	viper.BindEnv("COGCAT_S3_SECURE")

	viper.SetDefault("COGCAT_BACKEND", "fs")
	viper.SetDefault("COGCAT_S3_SECURE", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("cogcat: no .env file found, using environment variables")
	}

	cfg := &config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("cogcat: failed to unmarshal config: %v", err)
	}
	return cfg
}

func (c *config) validateS3() error {
	if c.S3Endpoint == "" || c.S3Bucket == "" {
		return fmt.Errorf("cogcat: COGCAT_S3_ENDPOINT and COGCAT_S3_BUCKET are required for backend=s3")
	}
	return nil
}

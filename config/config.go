package config

import (
	logger "github.com/Bparsons0904/goLogger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string `mapstructure:"GENERAL_VERSION"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         int    `mapstructure:"DB_PORT"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	DatabaseCacheReset   int    `mapstructure:"DB_CACHE_RESET"`
	CorsAllowOrigins     string `mapstructure:"CORS_ALLOW_ORIGINS"`
	APISecretKey         string `mapstructure:"API_SECRET_KEY"`
	AdminPassword        string `mapstructure:"ADMIN_PASSWORD"`
	SessionSigningKey    string `mapstructure:"SESSION_SIGNING_KEY"`
	SessionTTLMinutes    int    `mapstructure:"SESSION_TTL_MINUTES"`
	NotesRequireAuth     bool   `mapstructure:"NOTES_REQUIRE_AUTH"`
	S3Bucket             string `mapstructure:"S3_BUCKET"`
	S3Region             string `mapstructure:"S3_REGION"`
	S3Endpoint           string `mapstructure:"S3_ENDPOINT"`
	S3PublicBaseURL      string `mapstructure:"S3_PUBLIC_BASE_URL"`
}

var envVars = []string{
	"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"DB_CACHE_ADDRESS", "DB_CACHE_PORT", "DB_CACHE_RESET",
	"CORS_ALLOW_ORIGINS",
	"API_SECRET_KEY", "ADMIN_PASSWORD", "SESSION_SIGNING_KEY", "SESSION_TTL_MINUTES",
	"NOTES_REQUIRE_AUTH",
	"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_PUBLIC_BASE_URL",
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	viper.AutomaticEnv()

	viper.SetDefault("SESSION_TTL_MINUTES", 480)
	viper.SetDefault("NOTES_REQUIRE_AUTH", true)
	viper.SetDefault("DB_CACHE_RESET", -1)

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}

	log.Info(
		"Successfully initialized config",
		"environment", config.Environment,
		"port", config.ServerPort,
		"notesRequireAuth", config.NotesRequireAuth,
		"photoStorage", config.S3Bucket != "",
	)

	return config, nil
}

func validateConfig(config Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.AdminPassword != "" && config.SessionSigningKey == "" {
		return log.ErrMsg("Fatal error: SESSION_SIGNING_KEY required when ADMIN_PASSWORD is set")
	}

	if config.SessionTTLMinutes <= 0 {
		return log.Error(
			"Fatal error: invalid session ttl",
			"minutes", config.SessionTTLMinutes,
		)
	}

	if config.S3Bucket != "" && config.S3Region == "" {
		return log.ErrMsg("Fatal error: S3_REGION required when S3_BUCKET is set")
	}

	if config.APISecretKey == "" && config.AdminPassword == "" {
		log.Warn("Neither API_SECRET_KEY nor ADMIN_PASSWORD is set, admin routes will reject every request")
	}

	return nil
}

package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Backend   Backend
	Interview Interview
}

type Server struct {
	Port string
}

// Backend describes the upstream CareerCracker REST API the gateway talks to.
type Backend struct {
	BaseURL string
	Timeout time.Duration
}

type Interview struct {
	QuestionsPerInterview int
	TypingInterval        time.Duration
	HistoryPageLimit      int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("BACKEND_TIMEOUT_S", 30)
	viper.SetDefault("QUESTIONS_PER_INTERVIEW", 5)
	viper.SetDefault("FEEDBACK_TYPING_INTERVAL_MS", 30)
	viper.SetDefault("HISTORY_PAGE_LIMIT", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Backend.BaseURL = viper.GetString("BACKEND_BASE_URL")
	config.Backend.Timeout = time.Duration(viper.GetInt("BACKEND_TIMEOUT_S")) * time.Second
	config.Interview.QuestionsPerInterview = viper.GetInt("QUESTIONS_PER_INTERVIEW")
	config.Interview.TypingInterval = time.Duration(viper.GetInt("FEEDBACK_TYPING_INTERVAL_MS")) * time.Millisecond
	config.Interview.HistoryPageLimit = viper.GetInt("HISTORY_PAGE_LIMIT")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

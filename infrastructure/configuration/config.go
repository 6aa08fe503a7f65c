package configuration

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"yt-service/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App        App        `json:"app"`
	YouTube    YouTube    `json:"youtube"`
	Search     Search     `json:"search"`
	Transcript Transcript `json:"transcript"`
	Convert    Convert    `json:"convert"`
	Redis      Redis      `json:"redis"`
}

type App struct {
	Port        int    `json:"port"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type YouTube struct {
	APIKey       string `json:"apiKey"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Search controls the search-result cache and pagination bounds.
type Search struct {
	CacheCapacity int           `json:"cacheCapacity"` // max distinct queries kept
	CacheTTL      time.Duration `json:"cacheTTL"`
	DefaultLimit  int           `json:"defaultLimit"`
	MaxLimit      int           `json:"maxLimit"`
	BatchSize     int           `json:"batchSize"` // results fetched upstream per distinct query
}

type Transcript struct {
	MaxRetries int           `json:"maxRetries"`
	Timeout    time.Duration `json:"timeout"`
}

type Convert struct {
	Dir        string        `json:"dir"`
	Timeout    time.Duration `json:"timeout"`
	YtDlpPath  string        `json:"ytDlpPath"`
	FFmpegPath string        `json:"ffmpegPath"`
}

// Redis, when Host is set, selects the redis-backed search cache instead of
// the in-process one.
type Redis struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initSearch(&C)
	initCollaborators(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found, using defaults and environment")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
}

func initSearch(C *Config) {
	if C.Search.CacheCapacity <= 0 {
		C.Search.CacheCapacity = 200
	}
	if C.Search.CacheTTL <= 0 {
		C.Search.CacheTTL = 10 * time.Minute
	}
	if C.Search.DefaultLimit <= 0 {
		C.Search.DefaultLimit = 15
	}
	if C.Search.MaxLimit <= 0 {
		C.Search.MaxLimit = 50
	}
	if C.Search.BatchSize <= 0 {
		C.Search.BatchSize = 200
	}
}

func initCollaborators(C *Config) {
	if C.YouTube.APIKey == "" {
		C.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if C.Transcript.MaxRetries <= 0 {
		C.Transcript.MaxRetries = 5
	}
	if C.Transcript.Timeout <= 0 {
		C.Transcript.Timeout = 30 * time.Second
	}
	if C.Convert.Dir == "" {
		C.Convert.Dir = "downloads"
	}
	if C.Convert.Timeout <= 0 {
		C.Convert.Timeout = 5 * time.Minute
	}
	if C.Convert.YtDlpPath == "" {
		C.Convert.YtDlpPath = "yt-dlp"
	}
	if C.Convert.FFmpegPath == "" {
		C.Convert.FFmpegPath = "ffmpeg"
	}
	if C.Redis.Host == "" {
		C.Redis.Host = os.Getenv("REDIS_HOST")
	}
	if C.Redis.Port == "" {
		C.Redis.Port = os.Getenv("REDIS_PORT")
	}
	if C.Redis.Password == "" {
		C.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}
}

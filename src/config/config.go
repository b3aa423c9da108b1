package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

type Config struct {
	Env    string
	AppURI string

	MongoURI string
	MongoDB  string
	RedisURI string

	JWTSecret string
	JWTTTL    time.Duration

	KakaoClientID     string
	KakaoClientSecret string
	KakaoRedirectURI  string

	AllowedOrigins string
	FrontendURL    string

	KafkaBrokers []string
	KafkaTopic   string

	DefaultLocale string
}

// Load reads .env (if present) then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_URI", "8888")
	v.SetDefault("MONGO_DB", "YeounDB")
	v.SetDefault("JWT_SECRET", "your_secret_key")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("KAFKA_TOPIC", "yeoun-survey-events")
	v.SetDefault("DEFAULT_LOCALE", "ko")
	v.AutomaticEnv()

	return &Config{
		Env:               strings.ToLower(v.GetString("ENV")),
		AppURI:            v.GetString("APP_URI"),
		MongoURI:          v.GetString("MONGO_URI"),
		MongoDB:           v.GetString("MONGO_DB"),
		RedisURI:          v.GetString("REDIS_URI"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTTTL:            v.GetDuration("JWT_TTL"),
		KakaoClientID:     v.GetString("KAKAO_CLIENT_ID"),
		KakaoClientSecret: v.GetString("KAKAO_CLIENT_SECRET"),
		KakaoRedirectURI:  v.GetString("KAKAO_REDIRECT_URI"),
		AllowedOrigins:    v.GetString("ALLOWED_ORIGINS"),
		FrontendURL:       v.GetString("FRONTEND_URL"),
		KafkaBrokers:      splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:        v.GetString("KAFKA_TOPIC"),
		DefaultLocale:     v.GetString("DEFAULT_LOCALE"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

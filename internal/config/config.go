package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName  string `env:"SERVICE_NAME"  envDefault:"zedasignal"`
	DomainName   string `env:"DOMAIN_NAME"   envDefault:"http://localhost:3000"`
	SupportEmail string `env:"SUPPORT_EMAIL" envDefault:"support@zedasignal.com"`

	Server ServerConfig `envPrefix:"SERVER_"`
	DB     DBConfig     `envPrefix:"POSTGRES_"`
	Redis  RedisConfig  `envPrefix:"REDIS_"`
	Minio  MinioConfig  `envPrefix:"MINIO_"`
	Email  EmailConfig  `envPrefix:"EMAIL_"`
	Termii TermiiConfig `envPrefix:"TERMII_"`
	Auth   AuthConfig   `envPrefix:"AUTH_"`
	Jaeger JaegerConfig `envPrefix:"JAEGER_"`
}

type ServerConfig struct {
	Mode           string   `env:"MODE"            envDefault:"dev"`
	Port           int      `env:"PORT"            envDefault:"8080"`
	Scheme         string   `env:"SCHEME"          envDefault:"http"`
	Domain         string   `env:"DOMAIN"          envDefault:"localhost"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DB"       envDefault:"zedasignal"`
}

type RedisConfig struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	Pass string `env:"PASS"`
}

type MinioConfig struct {
	Addr      string `env:"ADDR"       envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"     envDefault:"zedasignal"`
	UseSSL    bool   `env:"USE_SSL"    envDefault:"false"`
}

type EmailConfig struct {
	Server string `env:"SERVER" envDefault:"localhost"`
	Port   int    `env:"PORT"   envDefault:"587"`
	User   string `env:"USER"`
	Pass   string `env:"PASS"`
	From   string `env:"FROM"   envDefault:"Zedasignal Notifier <noreply@zedasignal.com>"`
}

type TermiiConfig struct {
	BaseURL  string `env:"BASE_URL"  envDefault:"https://api.ng.termii.com"`
	APIKey   string `env:"API_KEY"`
	SenderID string `env:"SENDER_ID" envDefault:"Zedasignal"`
}

type AuthConfig struct {
	JWT     JWTConfig     `envPrefix:"JWT_"`
	Captcha CaptchaConfig `envPrefix:"CAPTCHA_"`
	// ResetTokenHours is how long a password reset token stays valid.
	ResetTokenHours int `env:"RESET_TOKEN_HOURS" envDefault:"24"`
}

type JWTConfig struct {
	Secret string `env:"SECRET" envDefault:"secret"`
	Issuer string `env:"ISSUER" envDefault:"zedasignal"`
}

type CaptchaConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Secret  string `env:"SECRET"`
}

type JaegerConfig struct {
	Sampler  SamplerConfig  `envPrefix:"SAMPLER_"`
	Reporter ReporterConfig `envPrefix:"REPORTER_"`
}

type SamplerConfig struct {
	Type  string  `env:"TYPE"  envDefault:"const"`
	Param float64 `env:"PARAM" envDefault:"1"`
}

type ReporterConfig struct {
	LogSpans           bool   `env:"LOG_SPANS"             envDefault:"false"`
	LocalAgentHostPort string `env:"LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
}

// MustLoad reads an optional dotenv file at path and parses the environment into Config.
func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Fatal("failed to load env file", zap.String("path", path), zap.Error(err))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}

package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Cashfree
	Facebook
	Email
	Product
	Kafka
}

type APP struct {
	PORT          string `env:"APP_PORT" envDefault:"8080"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://trynexamind.com"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

// Cashfree holds the payment gateway credentials. The secret key doubles as the
// webhook signing key. Environment selects the sandbox or production base URL.
type Cashfree struct {
	AppID       string `env:"CASHFREE_APP_ID"`
	SecretKey   string `env:"CASHFREE_SECRET_KEY"`
	Environment string `env:"CASHFREE_ENV" envDefault:"TEST"`
}

type Facebook struct {
	PixelID     string `env:"FB_PIXEL_ID"`
	AccessToken string `env:"FB_ACCESS_TOKEN"`
}

type Email struct {
	User        string `env:"EMAIL_USER"`
	Password    string `env:"EMAIL_PASS"`
	FromName    string `env:"EMAIL_FROM_NAME" envDefault:"NexaMind"`
	SMTPHost    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort    int    `env:"SMTP_PORT" envDefault:"587"`
	DownloadURL string `env:"EBOOK_DOWNLOAD_URL" envDefault:"https://trynexamind.com/thank-you.html"`
}

// Product describes the single item sold through the checkout. The amount is
// fixed server-side and never taken from the caller.
type Product struct {
	Amount       float64 `env:"PRODUCT_AMOUNT" envDefault:"799.00"`
	Currency     string  `env:"PRODUCT_CURRENCY" envDefault:"INR"`
	Name         string  `env:"PRODUCT_NAME" envDefault:"Advanced Prompt Engineering Mastery"`
	OrderNote    string  `env:"ORDER_NOTE" envDefault:"Advanced Prompt Engineering Mastery - NexaMind"`
	DefaultEmail string  `env:"DEFAULT_CUSTOMER_EMAIL" envDefault:"customer@trynexamind.com"`
	DefaultPhone string  `env:"DEFAULT_CUSTOMER_PHONE" envDefault:"9999999999"`
	DefaultName  string  `env:"DEFAULT_CUSTOMER_NAME" envDefault:"NexaMind Customer"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"orders.created,payments.succeeded,payments.failed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

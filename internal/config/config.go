package config

import (
	"log"
	"os"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	ServiceToken string // shared secret for server-to-server calls
	AppURL       string // internal base URL the service generates links against
	PublicURL    string // browser-reachable base URL; falls back to AppURL
	ChannelID    string
	Currency     string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ramgate.db"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./ramgate.log"
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}
	publicURL := os.Getenv("PUBLIC_URL")
	if publicURL == "" {
		publicURL = appURL
	}
	channel := os.Getenv("CHANNEL_ID")
	if channel == "" {
		channel = "default"
	}
	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "MXN"
	}

	cfg := Config{
		Port:         port,
		DBDSN:        dsn,
		LogFile:      logFile,
		ServiceToken: os.Getenv("RAM_SERVICE_TOKEN"),
		AppURL:       appURL,
		PublicURL:    publicURL,
		ChannelID:    channel,
		Currency:     currency,
	}
	// Never log the token itself.
	log.Printf("[config] PORT=%s DB_DSN=%s APP_URL=%s PUBLIC_URL=%s CHANNEL_ID=%s CURRENCY=%s token_set=%t",
		cfg.Port, cfg.DBDSN, cfg.AppURL, cfg.PublicURL, cfg.ChannelID, cfg.Currency, cfg.ServiceToken != "")
	return cfg
}

package config

import (
	"os"

	"github.com/gmottab/cine-reservas/internal/util"
)

type Config struct {
	DatabaseDSN     string
	Addr            string
	CacheURL        string
	MQURL           string
	ClientsAPIURL   string
	CatalogAPIURL   string
	ReservationsURL string
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	return &Config{
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		Addr:            os.Getenv("ADDR"),
		CacheURL:        os.Getenv("CACHE_URL"),
		MQURL:           os.Getenv("RABBIT_MQ_URL"),
		ClientsAPIURL:   os.Getenv("CLIENTS_API_URL"),
		CatalogAPIURL:   os.Getenv("CATALOG_API_URL"),
		ReservationsURL: os.Getenv("RESERVATIONS_API_URL"),
	}, nil
}

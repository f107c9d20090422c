package config

import "time"

type Config struct {
	BaseURL        string
	Headless       bool
	RequestTimeout time.Duration
	CookieTimeout  time.Duration
	SearchTimeout  time.Duration
	ModalTimeout   time.Duration
	OverlayTimeout time.Duration
	ResultsTimeout time.Duration
	ModalAttempts  int
	MinResults     int
	MinDelay       time.Duration
	MaxDelay       time.Duration
	PostgresDSN    string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://grailed.com",
		Headless:       false,
		RequestTimeout: 60 * time.Second,
		CookieTimeout:  2 * time.Second,
		SearchTimeout:  2 * time.Second,
		ModalTimeout:   2 * time.Second,
		OverlayTimeout: 15 * time.Second,
		ResultsTimeout: 10 * time.Second,
		ModalAttempts:  3,
		MinResults:     30,
		MinDelay:       1 * time.Second,
		MaxDelay:       3 * time.Second,
	}
}

package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		Path        string `env:"PATH" envDefault:"funcionarios.db"`
		OpenTimeout int    `env:"OPEN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"DATABASE_"`
	Feedback struct {
		// Tempo, em segundos, que a mensagem de feedback fica visível na interface
		ClearAfter int `env:"CLEAR_AFTER" envDefault:"3"`
	} `envPrefix:"FEEDBACK_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Só retornamos o primeiro erro para deixar o log mais claro
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}

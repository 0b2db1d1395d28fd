package config

import (
	"context"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

type WeatherConfig struct {
	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY,required,notEmpty"`
	Units             string `env:"WEATHER_UNITS" envDefault:"metric"`
	DefaultLocation   string `env:"WEATHER_DEFAULT_LOCATION" envDefault:"Hobart, AU"`
}

func NewWeatherConfig(ctx context.Context) *WeatherConfig {
	c := &WeatherConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Weather config")
	}
	return c
}

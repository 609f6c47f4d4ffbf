package logger

import (
	"go.uber.org/zap"
)

// NewNamed builds a zap logger for the given environment, named after
// the service. Development gets human-readable console output, anything
// else gets production JSON.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Named(service), nil
}

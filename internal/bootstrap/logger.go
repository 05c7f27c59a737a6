package bootstrap

import "go.uber.org/zap"

// NewLogger returns a production logger for APP_ENV=production and a
// development logger otherwise.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

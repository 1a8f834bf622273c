// README: zap logger construction, JSON to stdout.
package infra

import "go.uber.org/zap"

func NewLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}

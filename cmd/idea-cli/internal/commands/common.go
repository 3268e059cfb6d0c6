package commands

import (
	"fmt"

	"github.com/ujwal-s-r/system-design/internal/pkg/config"
	"github.com/ujwal-s-r/system-design/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := config.DefaultLoggerSettings()

	if err := logger.InitLogger(&settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

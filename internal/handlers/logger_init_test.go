package handlers_test

import (
	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{
		Level:       "info",
		Environment: "test",
		ServiceName: "ashworth-api-test",
	})
}

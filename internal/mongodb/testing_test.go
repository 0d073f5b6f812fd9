package mongodb

import "github.com/deepblocks/auth-service/internal/logger"

func testLogger() *logger.Logger {
	return logger.NewDefault("test")
}

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFileName = "checkout_bot.log"

// Setup configures the process logger: full-timestamp text format, written
// to stdout and to logs/checkout_bot.log. The instance name is attached to
// every line for correlation across deployments.
func Setup(instanceName string) (*logrus.Entry, error) {
	return setupAt("logs", instanceName)
}

func setupAt(dir, instanceName string) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return logger.WithField("instance", instanceName), nil
}

package utils

import (
	"io"

	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

// CloseLogged closes c and logs the outcome under name. Meant for shutdown
// paths where a failed close must not abort the remaining cleanup.
func CloseLogged(c io.Closer, name string, log logger.Logger) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Warn("failed to close "+name, logger.Error(err))
		return
	}
	log.Info("✅ " + name + " closed cleanly")
}

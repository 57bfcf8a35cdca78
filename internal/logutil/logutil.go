// Package logutil holds the logger defaults shared by the algorithm packages.
package logutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// OrDiscard returns logger scoped to module, or a logger that drops
// everything when logger is nil.
func OrDiscard(logger logrus.FieldLogger, module string) logrus.FieldLogger {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	return logger.WithField("module", module)
}

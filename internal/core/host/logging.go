package host

import "github.com/sirupsen/logrus"

// Tag is attached to every diagnostic line.
const Tag = "MainScreen"

// LogrusSink writes diagnostic lines at debug level.
func LogrusSink(logger logrus.FieldLogger) LogFunc {
	entry := logger.WithField("tag", Tag)
	return func(line string) {
		entry.Debug(line)
	}
}

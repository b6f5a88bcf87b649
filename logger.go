package cryptoprim

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	log    = logrus.New()
	Logger = log
)

func init() {
	// set level from env
	if x, exists := os.LookupEnv("LOG"); exists {
		if level, err := logrus.ParseLevel(strings.ToLower(x)); err == nil {
			Logger.SetLevel(level)
		}
	}
}

// SizeFields describes secret material for logging without revealing it.
func SizeFields(name string, x []byte) logrus.Fields {
	return logrus.Fields{name + "_size": len(x)}
}

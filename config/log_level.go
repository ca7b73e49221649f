package config

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error", "":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.ERROR, fmt.Errorf("unknown log level %q", level)
	}
}

package config

import "os"

func IsDebug() bool {
	return os.Getenv("TASBOT_DEBUG") == "1"
}

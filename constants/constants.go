package constants

import (
	"os"
	"time"

	"github.com/jsphweid/livechord/util"
)

const (
	DefaultPollInterval = time.Second
	DefaultDebounce     = 50 * time.Millisecond
	DefaultHTTPAddr     = ":8080"
	DefaultLogLevel     = "info"
)

func getDuration(name string, fallback time.Duration) time.Duration {
	val := os.Getenv(name)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		panic(name + " is not a valid positive duration: " + val)
	}
	return d
}

func getString(name string, fallback string) string {
	val := os.Getenv(name)
	if val != "" {
		return val
	}
	return fallback
}

func GetPollInterval() time.Duration {
	return getDuration("LIVECHORD_POLL_INTERVAL", DefaultPollInterval)
}

func GetDebounce() time.Duration {
	return getDuration("LIVECHORD_DEBOUNCE", DefaultDebounce)
}

func GetHTTPAddr() string {
	return getString("LIVECHORD_HTTP_ADDR", DefaultHTTPAddr)
}

func GetLogLevel() string {
	return getString("LIVECHORD_LOG_LEVEL", DefaultLogLevel)
}

func GetCORSOrigins() []string {
	origins := util.SplitList(os.Getenv("LIVECHORD_CORS_ORIGINS"))
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

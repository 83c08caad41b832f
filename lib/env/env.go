package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// Timeout returns TEXTGRAPH_TIMEOUT in seconds.
func Timeout() (int, bool) {
	return intEnv("TEXTGRAPH_TIMEOUT")
}

// ChaosIterations returns how many random graphs the chaos tests render,
// from TEXTGRAPH_CHAOS_N.
func ChaosIterations() (int, bool) {
	return intEnv("TEXTGRAPH_CHAOS_N")
}

func intEnv(k string) (int, bool) {
	if s := os.Getenv(k); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}

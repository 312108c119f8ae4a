// Package util contains helpers that don't match any other package
package util

import "os"

// IsRunningInDocker reports whether the process runs inside a container
// started by docker or podman
func IsRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if _, err := os.Stat("/run/.containerenv"); err == nil {
		return true
	}

	return os.Getenv("container") != ""
}

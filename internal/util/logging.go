// Package util provides common utilities including logging helpers,
// file system paths and small numeric helpers.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogWarnings logs each non-nil error with context.
func LogWarnings(context string, errs []error) {
	for _, err := range errs {
		LogError(context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

package main

import "fmt"

func versionLabel() string {
	label := version
	if commit != "unknown" || buildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", version, commit, buildTime)
	}
	return label
}

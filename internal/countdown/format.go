package countdown

import (
	"fmt"
	"strings"
)

// Readable splits seconds into zero-padded hours, minutes and seconds fields.
func Readable(seconds int) (string, string, string) {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	rem := seconds % 3600
	return pad2(h), pad2(rem / 60), pad2(rem % 60)
}

// TimeReadable formats seconds as HH:MM:SS.
func TimeReadable(seconds int) string {
	h, m, s := Readable(seconds)
	return strings.Join([]string{h, m, s}, ":")
}

// HoursReadable is the zero-padded hours field of seconds.
func HoursReadable(seconds int) string {
	h, _, _ := Readable(seconds)
	return h
}

// MinutesReadable is the zero-padded minutes field of seconds, without the hours.
func MinutesReadable(seconds int) string {
	_, m, _ := Readable(seconds)
	return m
}

// SecondsReadable is the zero-padded seconds field of seconds, without hours and minutes.
func SecondsReadable(seconds int) string {
	_, _, s := Readable(seconds)
	return s
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

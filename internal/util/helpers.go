package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Wrap maps value into [min, max], wrapping around at both ends.
func Wrap(value, min, max int) int {
	span := max - min + 1
	if span <= 0 {
		return min
	}
	off := (value - min) % span
	if off < 0 {
		off += span
	}
	return min + off
}

// ClampFloat constrains a float to a range.
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

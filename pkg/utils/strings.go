package utils

import "strconv"

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}

// ParseFloat parses a string to float64 with a fallback default value
func ParseFloat(s string, defaultVal float64) float64 {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return val
}

// ParseBoolPtr parses an optional boolean query value.
// Empty or malformed input yields nil (flag unset).
func ParseBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &val
}

package utils

// MaskUsername masks a username for safe logging.
// Example: "alice" -> "a***"
func MaskUsername(username string) string {
	r := []rune(username)
	if len(r) == 0 {
		return "***"
	}
	return string(r[0]) + "***"
}

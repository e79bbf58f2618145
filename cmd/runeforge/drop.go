package main

import "strings"

// NormalizeDropPath extracts a usable file path from text dropped or
// pasted into the terminal. Drag-and-drop payloads may arrive
// brace-wrapped (paths with spaces) or as a space-separated list; the
// first path wins.
func NormalizeDropPath(data string) string {
	data = strings.TrimSpace(data)
	if data == "" {
		return ""
	}
	if strings.HasPrefix(data, "{") {
		if end := strings.Index(data, "}"); end != -1 {
			return data[1:end]
		}
		return strings.Trim(data, "{}")
	}
	return strings.Fields(data)[0]
}

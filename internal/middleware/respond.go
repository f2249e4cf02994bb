package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// wantsJSON reports whether the request belongs to the JSON surface of the app,
// page requests get plain text errors instead
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/check_answer" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// writeError responds with {"error": message} or a plain text body depending on the request
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if !wantsJSON(r) {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

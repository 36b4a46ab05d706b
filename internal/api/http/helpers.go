package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	"github.com/auy-connect/student-portal/internal/sheets"
)

func writeJSON(w nethttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w nethttp.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFetchError maps fetcher failures onto user-facing responses:
// a server-reported message is surfaced as-is, anything else becomes a
// generic retry-later message. NotConfigured never reaches here; the
// portal service swallows it with the demo fallback.
func writeFetchError(w nethttp.ResponseWriter, err error) {
	var re *sheets.RemoteError
	if errors.As(err, &re) {
		writeError(w, nethttp.StatusBadGateway, re.Message)
		return
	}
	writeError(w, nethttp.StatusBadGateway, "failed to load data, please try again later")
}

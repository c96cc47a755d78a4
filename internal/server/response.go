package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "server")

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeInternalErrorf(context.Background(), w, "failed to marshal response: %s", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	b, _ := json.Marshal(Error{Error: message})
	_, _ = w.Write(b)
}

func writeErrorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	writeError(w, status, fmt.Sprintf(format, args...))
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	log.WithContext(ctx).Errorf(format, args...)
	writeError(w, http.StatusInternalServerError, "internal error")
}

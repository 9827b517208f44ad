package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err == io.EOF {
		writeText(w, http.StatusBadRequest, "Missing body")
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("path", r.URL.Path).Debug("could not parse request body")
		writeText(w, http.StatusBadRequest, "Could not read body")
		return
	}
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("could not encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

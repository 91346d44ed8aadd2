// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
//	WriteJSON(w, map[string]string{"error": "BA201 signature verification failed"}, http.StatusUnauthorized)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return writeBody(w, jsonData, "application/json", statusCode)
}

// WriteMessage writes an already serialized protocol message verbatim.
// Signed envelopes must not be re-encoded: the signature covers the exact
// payload bytes.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return writeBody(w, []byte(message), "application/json", statusCode)
}

// WriteText writes a plain text body, e.g. a bare public key.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return writeBody(w, []byte(text), "text/plain; charset=utf-8", statusCode)
}

func writeBody(w http.ResponseWriter, body []byte, contentType string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

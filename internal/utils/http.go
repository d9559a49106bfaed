// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-community-share/models"
)

// maxBodyBytes caps request bodies decoded by [ReadJSON].
const maxBodyBytes = 1 << 20

// WriteJSON writes data as a JSON body with statusCode.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData wraps data in the {data, message, apiKey} envelope.
func WriteData[T any](w http.ResponseWriter, statusCode int, data T, apiKey string) (int, error) {
	return WriteJSON(w, models.Envelope[T]{Data: data, APIKey: apiKey}, statusCode)
}

// WriteMessage writes an envelope carrying only a message. Errors use it.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) (int, error) {
	return WriteJSON(w, models.Envelope[any]{Message: message}, statusCode)
}

// ReadJSON decodes a single JSON value from r's body into dst. Unknown
// fields are ignored; an empty body is an error.
func ReadJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("error decoding request body: %w", err)
	}
	return nil
}

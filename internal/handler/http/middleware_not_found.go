// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/utils"
)

// notFound answers unknown routes, and known routes called with an
// unsupported method, with a 404 envelope. Registered as both the NotFound
// and MethodNotAllowed handler so route existence is not leaked.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, http.StatusNotFound, app.MsgNotFound)
}

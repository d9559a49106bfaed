// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-community-share/internal/utils"
)

// getServerVersion: GET /api/version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteData(w, http.StatusOK, h.services.AppInfoService.GetBuildInfo(r.Context()), "")
}

// getStatistics: GET /api/statistics. Public, like the version.
func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatisticsService.GetStatistics(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, stats, "")
}

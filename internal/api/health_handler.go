package api

import "net/http"

// Version is reported by the health endpoint.
const Version = "1.0.1"

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"2級建築施工管理技士 過去問題集 API"`
	Version string `json:"version" example:"1.0.1"`
}

// health reports that the server is up.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "2級建築施工管理技士 過去問題集 API",
		Version: Version,
	})
}

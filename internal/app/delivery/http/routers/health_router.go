package routers

import (
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/utils"
	"net/http"
)

// healthz reports liveness only.
func healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildTextResponse(w, constvars.StatusOK, "ok")
}

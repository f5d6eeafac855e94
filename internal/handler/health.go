package handler

import (
	"context"
	"net/http"

	"github.com/pkordes/parcel-intake/internal/handler/gen"
	"github.com/pkordes/parcel-intake/spec"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// OpenAPI serves the embedded spec/openapi.yaml. It sits outside the
// generated router because the document does not describe itself.
func OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}

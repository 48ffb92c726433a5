package breakdown

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for breakdown operations
type Handler struct {
	service *Service
}

// NewHandler creates a new breakdown handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for breakdown endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Compute)
	r.Post("/export", h.Export)

	return r
}

// Compute handles POST /breakdowns
// @Summary      Compute an expense breakdown
// @Description  Split the total accommodation cost by nights stayed plus an even share of additional expenses
// @Tags         breakdowns
// @Accept       json
// @Produce      json
// @Param        request body ComputeRequest true "Breakdown computation request"
// @Success      200 {object} response.APIResponse{data=[]Row}
// @Failure      400 {object} response.APIResponse
// @Router       /breakdowns [post]
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rows, err := h.service.Compute(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNegativeNights) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute breakdown")
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// Export handles POST /breakdowns/export
// @Summary      Export an expense breakdown as CSV
// @Description  Compute the breakdown and return it as a downloadable delimited text file
// @Tags         breakdowns
// @Accept       json
// @Produce      text/csv
// @Param        request body ComputeRequest true "Breakdown computation request"
// @Success      200 {string} string "CSV file"
// @Failure      400 {object} response.APIResponse
// @Router       /breakdowns/export [post]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rows, err := h.service.Compute(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNegativeNights) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute breakdown")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", CSVFilename))

	if err := h.service.WriteCSV(w, rows); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

package trip

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tripsplit/internal/breakdown"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for trip session operations
type Handler struct {
	service *Service
}

// NewHandler creates a new trip handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for trip endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	r.Put("/{id}/cost", h.SetTotalCost)

	r.Post("/{id}/participants", h.AddParticipant)
	r.Put("/{id}/participants/{index}", h.UpdateParticipant)
	r.Delete("/{id}/participants/{index}", h.RemoveParticipant)

	r.Post("/{id}/expenses", h.AddExpense)
	r.Delete("/{id}/expenses/{label}", h.RemoveExpense)

	r.Post("/{id}/reset", h.Reset)
	r.Post("/{id}/compute", h.Compute)
	r.Get("/{id}/export", h.Export)

	return r
}

// Create handles POST /trips
// @Summary      Start a trip session
// @Description  Create a new editing session seeded with two default participants and a Groceries expense
// @Tags         trips
// @Produce      json
// @Success      201 {object} response.APIResponse{data=Trip}
// @Router       /trips [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	trip := h.service.Create(r.Context())
	response.JSON(w, http.StatusCreated, trip)
}

// GetByID handles GET /trips/{id}
// @Summary      Get a trip session
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	trip, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// Delete handles DELETE /trips/{id}
// @Summary      Discard a trip session
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Trip discarded"})
}

// SetTotalCost handles PUT /trips/{id}/cost
// @Summary      Set the total accommodation cost
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        request body SetCostRequest true "Total cost"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/cost [put]
func (h *Handler) SetTotalCost(w http.ResponseWriter, r *http.Request) {
	var req SetCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.SetTotalCost(r.Context(), chi.URLParam(r, "id"), req.TotalCost)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// AddParticipant handles POST /trips/{id}/participants
// @Summary      Add a participant row
// @Description  Append a participant; a blank name becomes PersonN and omitted nights default to 1
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        request body AddParticipantRequest true "Participant row"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	req := &AddParticipantRequest{}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	trip, err := h.service.AddParticipant(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// UpdateParticipant handles PUT /trips/{id}/participants/{index}
// @Summary      Edit a participant row
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        index path int true "Participant position"
// @Param        request body UpdateParticipantRequest true "Fields to change"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/participants/{index} [put]
func (h *Handler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Invalid participant index")
		return
	}

	var req UpdateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.UpdateParticipant(r.Context(), chi.URLParam(r, "id"), index, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// RemoveParticipant handles DELETE /trips/{id}/participants/{index}
// @Summary      Remove a participant row
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        index path int true "Participant position"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/participants/{index} [delete]
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Invalid participant index")
		return
	}

	trip, err := h.service.RemoveParticipant(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// AddExpense handles POST /trips/{id}/expenses
// @Summary      Add or overwrite a shared expense
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        request body AddExpenseRequest true "Expense label and amount"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/expenses [post]
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.AddExpense(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// RemoveExpense handles DELETE /trips/{id}/expenses/{label}
// @Summary      Remove a shared expense
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Param        label path string true "Expense label"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/expenses/{label} [delete]
func (h *Handler) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	trip, err := h.service.RemoveExpense(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "label"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// Reset handles POST /trips/{id}/reset
// @Summary      Reset a trip session to its defaults
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=Trip}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/reset [post]
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	trip, err := h.service.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, trip)
}

// Compute handles POST /trips/{id}/compute
// @Summary      Compute the session's expense breakdown
// @Tags         trips
// @Produce      json
// @Param        id path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]breakdown.Row}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/compute [post]
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Compute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rows)
}

// Export handles GET /trips/{id}/export
// @Summary      Download the session's breakdown as CSV
// @Tags         trips
// @Produce      text/csv
// @Param        id path string true "Trip ID"
// @Success      200 {string} string "CSV file"
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id}/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	// Build the CSV in full before committing to response headers, so a
	// missing session still gets a proper error envelope.
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), chi.URLParam(r, "id"), &buf); err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", breakdown.CSVFilename))
	w.Write(buf.Bytes())
}

// writeError maps service errors to HTTP status codes
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrParticipantIndex),
		errors.Is(err, ErrExpenseNotFound),
		errors.Is(err, ErrNegativeNights):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, "Unexpected error")
	}
}

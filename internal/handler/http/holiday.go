package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/holiday"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/threshold"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)

	GetThreshold(w http.ResponseWriter, r *http.Request)
	UpsertThreshold(w http.ResponseWriter, r *http.Request)
	ThresholdHistory(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService   holiday.Service
	thresholdService threshold.Service
}

func NewHolidayHandler(holidayService holiday.Service, thresholdService threshold.Service) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService:   holidayService,
		thresholdService: thresholdService,
	}
}

// Create implements HolidayHandler.
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday created", result)
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter holiday.ListHolidaysFilter
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = &year
		}
	}
	if state := r.URL.Query().Get("state"); state != "" {
		filter.State = &state
	}

	results, err := h.holidayService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// Update implements HolidayHandler.
func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.holidayService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday updated", result)
}

// Delete implements HolidayHandler.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// Sync implements HolidayHandler. Defaults to the current year.
func (h *holidayHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if parsed, err := strconv.Atoi(yearStr); err == nil {
			year = parsed
		}
	}

	count, err := h.holidayService.SyncYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday calendar synced", map[string]int{"year": year, "count": count})
}

// GetThreshold implements HolidayHandler.
func (h *holidayHandlerImpl) GetThreshold(w http.ResponseWriter, r *http.Request) {
	result, err := h.thresholdService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpsertThreshold implements HolidayHandler.
func (h *holidayHandlerImpl) UpsertThreshold(w http.ResponseWriter, r *http.Request) {
	var req threshold.UpsertThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.thresholdService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Threshold saved", result)
}

// ThresholdHistory implements HolidayHandler.
func (h *holidayHandlerImpl) ThresholdHistory(w http.ResponseWriter, r *http.Request) {
	results, err := h.thresholdService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

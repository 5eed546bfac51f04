package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playden/backend/internal/models"
	"github.com/playden/backend/internal/services"
)

type POSHandler struct {
	service   *services.POSService
	validator *services.ValidationHelper
}

func NewPOSHandler(service *services.POSService) *POSHandler {
	return &POSHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// StartSessionRequest is the body of POST /sessions/start.
type StartSessionRequest struct {
	Mobile      string `json:"mobile" validate:"required" example:"9876543210"`
	Station     string `json:"station" validate:"required" example:"A"`
	Game        string `json:"game" validate:"required" example:"Game A"`
	Controllers int    `json:"controllers" validate:"gte=0" example:"2"`
}

// EndSessionRequest is the body of POST /sessions/end. UseWallet defaults
// to true when omitted.
type EndSessionRequest struct {
	SessionID string  `json:"session_id" validate:"required"`
	FoodCost  float64 `json:"food_cost" validate:"gte=0" example:"20"`
	UseWallet *bool   `json:"use_wallet"`
}

// UpdatePriceRequest is the body of POST /games/price. The price is a
// pointer so an explicit zero (free play promo) passes required-field
// validation.
type UpdatePriceRequest struct {
	Name         string   `json:"name" validate:"required" example:"Game A"`
	PricePerHour *float64 `json:"price_per_hour" validate:"required" example:"120"`
}

// ListGames returns the game catalog
// @Summary List games
// @Description List the playable titles with hourly rates
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Game
// @Router /games [get]
func (h *POSHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	services.SendJSON(w, http.StatusOK, h.service.ListGames())
}

// UpdatePrice changes a game's hourly rate
// @Summary Update game price
// @Description Change the hourly rate of one catalog title
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body UpdatePriceRequest true "Price update"
// @Success 200 {object} object{status=string,games=[]models.Game}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /games/price [post]
func (h *POSHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req UpdatePriceRequest

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	if err := h.service.UpdateGamePrice(req.Name, *req.PricePerHour); err != nil {
		services.SendErrorResponse(w, err.Error(), services.HTTPStatus(err), nil)
		return
	}

	services.SendJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"games":  h.service.ListGames(),
	})
}

// GetStations returns the occupancy board
// @Summary Station occupancy
// @Description Show every station with its occupancy and active session id
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string]models.StationStatus
// @Router /stations [get]
func (h *POSHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	services.SendJSON(w, http.StatusOK, h.service.GetOccupancy())
}

// GetSessions lists the active sessions
// @Summary Active sessions
// @Description List every session currently running
// @Tags sessions
// @Produce json
// @Success 200 {array} models.Session
// @Router /sessions [get]
func (h *POSHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	services.SendJSON(w, http.StatusOK, h.service.ListActiveSessions())
}

// StartSession starts the meter on a station
// @Summary Start session
// @Description Claim a free station for a customer and start the meter
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Session to start"
// @Success 200 {object} object{session_id=string,status=string}
// @Failure 400 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /sessions/start [post]
func (h *POSHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	sess, err := h.service.StartSession(req.Mobile, req.Station, req.Game, req.Controllers)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), services.HTTPStatus(err), nil)
		return
	}

	services.SendJSON(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"status":     "started",
	})
}

// EndSession stops the meter and bills the session
// @Summary End session
// @Description End an active session, settle the wallet and emit the invoice
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body EndSessionRequest true "Session to end"
// @Success 200 {object} object{invoice=models.BillingRecord,pdf=string}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /sessions/end [post]
func (h *POSHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	var req EndSessionRequest

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	useWallet := true
	if req.UseWallet != nil {
		useWallet = *req.UseWallet
	}

	rec, invoiceRef, err := h.service.EndSession(req.SessionID, req.FoodCost, useWallet)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), services.HTTPStatus(err), nil)
		return
	}

	services.SendJSON(w, http.StatusOK, map[string]any{
		"invoice": rec,
		"pdf":     invoiceRef,
	})
}

// GetUser returns a customer's wallet record
// @Summary Get user
// @Description Look a customer up by mobile number, creating the record on first sight
// @Tags users
// @Produce json
// @Param mobile path string true "Mobile number"
// @Success 200 {object} models.User
// @Failure 400 {object} services.ErrorResponse
// @Router /users/{mobile} [get]
func (h *POSHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetOrCreateUser(chi.URLParam(r, "mobile"))
	if err != nil {
		services.SendErrorResponse(w, err.Error(), services.HTTPStatus(err), nil)
		return
	}
	services.SendJSON(w, http.StatusOK, user)
}

// ListInvoices returns billing history
// @Summary List invoices
// @Description Billing history, newest first, optionally filtered by mobile
// @Tags invoices
// @Produce json
// @Param mobile query string false "Filter by mobile number"
// @Param limit query int false "Page size, default 50"
// @Success 200 {object} object{invoices=[]models.InvoiceRecord,count=int}
// @Failure 500 {object} services.ErrorResponse
// @Router /invoices [get]
func (h *POSHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			services.SendErrorResponse(w, "limit must be an integer", http.StatusBadRequest, nil)
			return
		}
		limit = n
	}

	records, err := h.service.ListInvoices(r.URL.Query().Get("mobile"), limit)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), services.HTTPStatus(err), nil)
		return
	}
	if records == nil {
		records = []models.InvoiceRecord{}
	}

	services.SendJSON(w, http.StatusOK, map[string]any{
		"invoices": records,
		"count":    len(records),
	})
}

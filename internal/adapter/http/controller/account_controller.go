package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bancoreal/transfer-service/internal/adapter/http/models"
	"github.com/bancoreal/transfer-service/internal/commons"
)

type AccountService interface {
	RegisterAccount(ctx context.Context, req models.RegisterAccountRequest) (commons.Response[models.RegisterAccountResponse], error)
	GetBalance(ctx context.Context, accountID int64) (commons.Response[models.BalanceResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register := http.Handler(http.HandlerFunc(c.register))
	balance := http.Handler(http.HandlerFunc(c.balance))
	if authMiddleware != nil {
		register = authMiddleware(register)
		balance = authMiddleware(balance)
	}

	mux.Handle("POST /accounts", register)
	mux.Handle("GET /accounts/{id}", balance)
}

func (c *AccountController) register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.RegisterAccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterAccount(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", response.Data.ID))
	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) balance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accountID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || accountID <= 0 {
		response := commons.ErrorResponse[models.BalanceResponse]("validation failed", "id must be a positive integer")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.GetBalance(r.Context(), accountID)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

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
	"github.com/bancoreal/transfer-service/internal/domain"
)

type TransferService interface {
	TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	ListTransfers(ctx context.Context, accountID int64, page domain.PageRequest) (commons.Response[models.TransferListResponse], error)
}

type TransferController struct {
	service TransferService
}

func NewTransferController(service TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	transfer := http.Handler(http.HandlerFunc(c.transfer))
	list := http.Handler(http.HandlerFunc(c.list))
	if authMiddleware != nil {
		transfer = authMiddleware(transfer)
		list = authMiddleware(list)
	}

	mux.Handle("POST /transfers", transfer)
	mux.Handle("GET /accounts/{id}/transfers", list)
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.TransferFunds(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/transfers/%d", response.Data.ID))
	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *TransferController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accountID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || accountID <= 0 {
		response := commons.ErrorResponse[models.TransferListResponse]("validation failed", "id must be a positive integer")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	page := pageRequestFromQuery(r)

	response, err := c.service.ListTransfers(r.Context(), accountID, page)
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

func pageRequestFromQuery(r *http.Request) domain.PageRequest {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("size"))

	return domain.NewPageRequest(page, size, query.Get("sort"), query.Get("direction"))
}

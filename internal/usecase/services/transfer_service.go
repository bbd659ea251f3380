package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bancoreal/transfer-service/internal/adapter/http/models"
	"github.com/bancoreal/transfer-service/internal/adapter/repository/repo_interfaces"
	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/domain"
	"github.com/bancoreal/transfer-service/internal/logger"
)

type TransferService struct {
	accountRepo  repo_interfaces.AccountRepository
	transferRepo repo_interfaces.TransferRepository
}

func NewTransferService(
	accountRepo repo_interfaces.AccountRepository,
	transferRepo repo_interfaces.TransferRepository,
) *TransferService {
	return &TransferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	if req.SourceAccountID == req.DestinationAccountID {
		err := commons.ErrSameAccount
		logger.Info("transfer service rejected same-account transfer", logger.Fields{
			"accountId": req.SourceAccountID,
		})
		return commons.ErrorResponse[models.TransferResponse]("Same account", err.Error()), err
	}

	source, err := s.accountRepo.GetByID(ctx, req.SourceAccountID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Source account not found"), fmt.Errorf("source account %d: %w", req.SourceAccountID, err)
		}
		logger.Error("transfer service load source account failed", err, logger.Fields{
			"accountId": req.SourceAccountID,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	destination, err := s.accountRepo.GetByID(ctx, req.DestinationAccountID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), fmt.Errorf("destination account %d: %w", req.DestinationAccountID, err)
		}
		logger.Error("transfer service load destination account failed", err, logger.Fields{
			"accountId": req.DestinationAccountID,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	// Sufficiency is a comparison against the loaded balance; the debit only
	// happens after, so the balance can never transit through a negative
	// state on this path.
	if !source.HasSufficientBalance(req.Amount) {
		err := commons.ErrInsufficientBalance
		logger.Info("transfer service insufficient balance", logger.Fields{
			"sourceAccountId": source.ID,
			"amount":          req.Amount,
		})
		return commons.ErrorResponse[models.TransferResponse]("Insufficient balance", err.Error()), err
	}

	sourceVersion := source.Version
	destinationVersion := destination.Version
	debited := source.Debit(req.Amount)
	credited := destination.Credit(req.Amount)
	transfer := domain.NewTransfer(source.ID, destination.ID, req.Amount)

	created, err := s.transferRepo.CommitTransfer(ctx, debited, sourceVersion, credited, destinationVersion, transfer)
	if err != nil {
		if errors.Is(err, commons.ErrVersionConflict) {
			logger.Info("transfer service commit conflict", logger.Fields{
				"sourceAccountId":      source.ID,
				"destinationAccountId": destination.ID,
			})
			return commons.ErrorResponse[models.TransferResponse]("Transfer conflict", "The operation could not be completed. Please try again."), err
		}
		logger.Error("transfer service commit failed", err, logger.Fields{
			"sourceAccountId":      source.ID,
			"destinationAccountId": destination.ID,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	response := models.TransferResponse{
		ID:                   created.ID,
		SourceAccountID:      created.SourceAccountID,
		DestinationAccountID: created.DestinationAccountID,
		Amount:               created.Amount,
		CreatedAt:            created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("transfer service transfer funds success", logger.Fields{
		"transferId": response.ID,
		"amount":     response.Amount,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}

func (s *TransferService) ListTransfers(ctx context.Context, accountID int64, page domain.PageRequest) (commons.Response[models.TransferListResponse], error) {
	logger.Info("transfer service list transfers request", logger.Fields{
		"accountId": accountID,
		"page":      page.Page,
		"size":      page.Size,
	})

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferListResponse]("Account not found"), err
		}
		logger.Error("transfer service list transfers load account failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.TransferListResponse]("failed to list transfers", "Unable to list transfers right now"), err
	}

	result, err := s.transferRepo.FindPageBySourceOrDestination(ctx, account.ID, page)
	if err != nil {
		logger.Error("transfer service list transfers query failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.TransferListResponse]("failed to list transfers", "Unable to list transfers right now"), err
	}

	views := make([]models.TransferView, 0, len(result.Content))
	counterparties := make(map[int64]domain.Account)
	for _, transfer := range result.Content {
		direction := models.TransferReceived
		counterpartyID := transfer.SourceAccountID
		if transfer.SourceAccountID == account.ID {
			direction = models.TransferSent
			counterpartyID = transfer.DestinationAccountID
		}

		counterparty, ok := counterparties[counterpartyID]
		if !ok {
			counterparty, err = s.accountRepo.GetByID(ctx, counterpartyID)
			if err != nil {
				logger.Error("transfer service list transfers load counterparty failed", err, logger.Fields{
					"accountId":      accountID,
					"counterpartyId": counterpartyID,
				})
				return commons.ErrorResponse[models.TransferListResponse]("failed to list transfers", "Unable to list transfers right now"), err
			}
			counterparties[counterpartyID] = counterparty
		}

		views = append(views, models.TransferView{
			ID:         transfer.ID,
			Amount:     transfer.Amount,
			CreatedAt:  transfer.CreatedAt.Format(time.RFC3339),
			Type:       direction,
			HolderName: counterparty.HolderName,
			Agency:     counterparty.Agency,
			Number:     counterparty.Number,
		})
	}

	response := models.TransferListResponse{
		Content:       views,
		Page:          result.Number,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}

	logger.Info("transfer service list transfers success", logger.Fields{
		"accountId":     accountID,
		"totalElements": response.TotalElements,
	})

	return commons.SuccessResponse("transfers listed successfully", response), nil
}

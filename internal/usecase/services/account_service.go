package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bancoreal/transfer-service/internal/adapter/http/models"
	"github.com/bancoreal/transfer-service/internal/adapter/repository/repo_interfaces"
	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/domain"
	"github.com/bancoreal/transfer-service/internal/logger"
)

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) RegisterAccount(ctx context.Context, req models.RegisterAccountRequest) (commons.Response[models.RegisterAccountResponse], error) {
	logger.Info("account service register account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service register account validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterAccountResponse]("validation failed", err.Error()), err
	}

	email := strings.TrimSpace(req.Email)
	document := domain.NewDocument(strings.TrimSpace(req.CPF))

	emailTaken, err := s.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Error("account service register account email check failed", err, logger.Fields{
			"email": email,
		})
		return commons.ErrorResponse[models.RegisterAccountResponse]("failed to register account", "Unable to register account right now"), err
	}
	if emailTaken {
		err := commons.ErrDuplicateEmail
		logger.Info("account service register account duplicate email", logger.Fields{
			"email": email,
		})
		return commons.ErrorResponse[models.RegisterAccountResponse]("Duplicate email", err.Error()), err
	}

	documentTaken, err := s.accountRepo.ExistsByDocumentFingerprint(ctx, document.Fingerprint)
	if err != nil {
		logger.Error("account service register account document check failed", err, nil)
		return commons.ErrorResponse[models.RegisterAccountResponse]("failed to register account", "Unable to register account right now"), err
	}
	if documentTaken {
		err := commons.ErrDuplicateDocument
		logger.Info("account service register account duplicate document", logger.Fields{
			"documentNumber": document.DisplayNumber,
		})
		return commons.ErrorResponse[models.RegisterAccountResponse]("Duplicate CPF", err.Error()), err
	}

	account := domain.NewAccount(
		strings.TrimSpace(req.Agency),
		strings.TrimSpace(req.Number),
		email,
		document,
		strings.TrimSpace(req.HolderName),
	)

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		// The pre-checks race against concurrent registrations; the storage
		// constraint is the authority and its violation maps back to the
		// duplicate errors.
		if errors.Is(err, commons.ErrDuplicateEmail) {
			return commons.ErrorResponse[models.RegisterAccountResponse]("Duplicate email", err.Error()), err
		}
		if errors.Is(err, commons.ErrDuplicateDocument) {
			return commons.ErrorResponse[models.RegisterAccountResponse]("Duplicate CPF", err.Error()), err
		}
		logger.Error("account service register account repository failed", err, logger.Fields{
			"email": email,
		})
		return commons.ErrorResponse[models.RegisterAccountResponse]("failed to register account", "Unable to register account right now"), err
	}

	response := models.RegisterAccountResponse{
		ID:         created.ID,
		Agency:     created.Agency,
		Number:     created.Number,
		Email:      created.Email,
		CPF:        created.Document.DisplayNumber,
		HolderName: created.HolderName,
		CreatedAt:  created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("account service register account success", logger.Fields{
		"accountId": response.ID,
		"agency":    response.Agency,
		"number":    response.Number,
	})

	return commons.SuccessResponse("account registered successfully", response), nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountID int64) (commons.Response[models.BalanceResponse], error) {
	logger.Info("account service get balance request", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		logger.Error("account service get balance failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.BalanceResponse]("failed to get balance", "Unable to fetch balance right now"), err
	}

	response := models.BalanceResponse{
		Agency:  account.Agency,
		Number:  account.Number,
		Balance: account.Balance,
	}

	logger.Info("account service get balance success", logger.Fields{
		"accountId": accountID,
	})

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Service contains the domain logic over a Store.
type Service struct {
	store  Store
	clock  Clock
	logger OperationLogger
	cache  BalanceCache
}

// NewService wires a Service.
func NewService(store Store, clock Clock, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{store: store, clock: clock}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// AddCreditsRequest describes a positive ledger movement.
type AddCreditsRequest struct {
	UserID         UserID
	Amount         Credits
	Type           TransactionType
	Description    string
	Metadata       Metadata
	IdempotencyKey string
}

// DeductCreditsRequest describes an AI usage debit.
type DeductCreditsRequest struct {
	UserID           UserID
	Amount           Credits
	RawCostEUR       decimal.Decimal
	AIProvider       string
	AIModel          string
	RawTokenCount    *int64
	TrailerProjectID string
	TrailerTaskID    string
	Description      string
	IdempotencyKey   string
}

// RefundCreditsRequest describes a refund to an existing account.
type RefundCreditsRequest struct {
	UserID                UserID
	Amount                Credits
	Description           string
	OriginalTransactionID string
	Notes                 map[string]string
	IdempotencyKey        string
}

// GetOrCreateAccount returns the user's account, creating it on first access.
func (service *Service) GetOrCreateAccount(ctx context.Context, userID UserID) (CreditAccount, error) {
	if userID.IsZero() {
		return CreditAccount{}, ErrInvalidUserID
	}
	account, err := service.store.GetOrCreateAccount(ctx, userID, NextMonday(service.clock.Now()))
	if err != nil {
		return CreditAccount{}, WrapError("service", errorSubjectAccount, errorCodeStore, err)
	}
	return account, nil
}

// GetBalance returns the current balance, or zero when the user has no account.
func (service *Service) GetBalance(ctx context.Context, userID UserID) (Credits, error) {
	if userID.IsZero() {
		return 0, ErrInvalidUserID
	}
	fillGeneration := int64(-1)
	if service.cache != nil {
		cached, found, cacheErr := service.cache.GetBalance(ctx, userID)
		if cacheErr == nil && found {
			return cached, nil
		}
		if generation, generationErr := service.cache.Generation(ctx, userID); generationErr == nil {
			fillGeneration = generation
		}
	}
	account, err := service.store.FindAccount(ctx, userID)
	if errors.Is(err, ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, WrapError("service", errorSubjectAccount, errorCodeStore, err)
	}
	if fillGeneration >= 0 {
		_ = service.cache.SetBalance(ctx, userID, account.Balance, fillGeneration)
	}
	return account.Balance, nil
}

// CanAfford reports whether the balance covers amount; non-positive amounts are always affordable.
func (service *Service) CanAfford(ctx context.Context, userID UserID, amount Credits) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	balance, err := service.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// AddCredits credits the account and appends the matching transaction.
func (service *Service) AddCredits(ctx context.Context, request AddCreditsRequest) (CreditTransaction, error) {
	transaction, operationError := service.addCredits(ctx, request)
	service.logOperation(ctx, OperationLog{
		Operation:   OperationAddCredits,
		UserID:      request.UserID,
		Amount:      request.Amount,
		Type:        request.Type,
		Transaction: committedTransaction(transaction, operationError),
		Error:       operationError,
	})
	return transaction, operationError
}

func (service *Service) addCredits(ctx context.Context, request AddCreditsRequest) (CreditTransaction, error) {
	if request.UserID.IsZero() {
		return CreditTransaction{}, ErrInvalidUserID
	}
	amount, err := NewPositiveCredits(request.Amount.Int64())
	if err != nil {
		return CreditTransaction{}, err
	}
	counter, err := request.Type.creditCounter()
	if err != nil {
		return CreditTransaction{}, err
	}
	if err := request.Metadata.ValidateFor(request.Type); err != nil {
		return CreditTransaction{}, err
	}
	now := service.clock.Now().UTC()
	var transaction CreditTransaction
	operationError := service.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		account, err := txStore.GetOrCreateAccount(ctx, request.UserID, NextMonday(now))
		if err != nil {
			return err
		}
		change, err := txStore.ApplyCredit(ctx, account.ID, amount, counter)
		if err != nil {
			return err
		}
		transaction, err = newTransaction(account, amount, change, request.Type, request.Description, request.Metadata, request.IdempotencyKey, now)
		if err != nil {
			return err
		}
		return txStore.InsertTransaction(ctx, transaction)
	})
	if operationError != nil {
		return CreditTransaction{}, WrapError("service", errorSubjectTransaction, "add", operationError)
	}
	service.invalidateBalance(ctx, request.UserID)
	return transaction, nil
}

// DeductCredits bills AI usage; the debit fails with ErrInsufficientCredits
// without side effects when the balance does not cover the amount.
func (service *Service) DeductCredits(ctx context.Context, request DeductCreditsRequest) (CreditTransaction, error) {
	transaction, operationError := service.deductCredits(ctx, request)
	service.logOperation(ctx, OperationLog{
		Operation:   OperationDeductCredits,
		UserID:      request.UserID,
		Amount:      request.Amount,
		Type:        TransactionAIUsage,
		Transaction: committedTransaction(transaction, operationError),
		Error:       operationError,
	})
	return transaction, operationError
}

func (service *Service) deductCredits(ctx context.Context, request DeductCreditsRequest) (CreditTransaction, error) {
	if request.UserID.IsZero() {
		return CreditTransaction{}, ErrInvalidUserID
	}
	amount, err := NewPositiveCredits(request.Amount.Int64())
	if err != nil {
		return CreditTransaction{}, err
	}
	if err := ValidateRawCost(request.RawCostEUR); err != nil {
		return CreditTransaction{}, err
	}
	usage := ComputeUsageCharge(request.RawCostEUR)
	usage.AIProvider = strings.TrimSpace(request.AIProvider)
	usage.AIModel = strings.TrimSpace(request.AIModel)
	usage.RawTokenCount = request.RawTokenCount
	usage.TrailerProjectID = strings.TrimSpace(request.TrailerProjectID)
	usage.TrailerTaskID = strings.TrimSpace(request.TrailerTaskID)

	now := service.clock.Now().UTC()
	var transaction CreditTransaction
	operationError := service.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		account, err := txStore.GetOrCreateAccount(ctx, request.UserID, NextMonday(now))
		if err != nil {
			return err
		}
		change, err := txStore.ApplyDebit(ctx, account.ID, amount)
		if err != nil {
			return err
		}
		transaction, err = newTransaction(account, -amount, change, TransactionAIUsage, request.Description, Metadata{}, request.IdempotencyKey, now)
		if err != nil {
			return err
		}
		transaction.Usage = &usage
		return txStore.InsertTransaction(ctx, transaction)
	})
	if operationError != nil {
		return CreditTransaction{}, WrapError("service", errorSubjectTransaction, "deduct", operationError)
	}
	service.invalidateBalance(ctx, request.UserID)
	return transaction, nil
}

// RefundCredits returns credits to an existing account.
func (service *Service) RefundCredits(ctx context.Context, request RefundCreditsRequest) (CreditTransaction, error) {
	transaction, operationError := service.refundCredits(ctx, request)
	service.logOperation(ctx, OperationLog{
		Operation:   OperationRefundCredits,
		UserID:      request.UserID,
		Amount:      request.Amount,
		Type:        TransactionRefund,
		Transaction: committedTransaction(transaction, operationError),
		Error:       operationError,
	})
	return transaction, operationError
}

func (service *Service) refundCredits(ctx context.Context, request RefundCreditsRequest) (CreditTransaction, error) {
	if request.UserID.IsZero() {
		return CreditTransaction{}, ErrInvalidUserID
	}
	amount, err := NewPositiveCredits(request.Amount.Int64())
	if err != nil {
		return CreditTransaction{}, err
	}
	metadata := Metadata{Notes: request.Notes}
	if originalID := strings.TrimSpace(request.OriginalTransactionID); originalID != "" {
		metadata.Refund = &RefundMetadata{OriginalTransactionID: originalID}
	}
	now := service.clock.Now().UTC()
	var transaction CreditTransaction
	operationError := service.store.WithTx(ctx, func(ctx context.Context, txStore Store) error {
		account, err := txStore.FindAccount(ctx, request.UserID)
		if err != nil {
			return err
		}
		change, err := txStore.ApplyCredit(ctx, account.ID, amount, CounterRefunded)
		if err != nil {
			return err
		}
		transaction, err = newTransaction(account, amount, change, TransactionRefund, request.Description, metadata, request.IdempotencyKey, now)
		if err != nil {
			return err
		}
		return txStore.InsertTransaction(ctx, transaction)
	})
	if operationError != nil {
		return CreditTransaction{}, WrapError("service", errorSubjectTransaction, "refund", operationError)
	}
	service.invalidateBalance(ctx, request.UserID)
	return transaction, nil
}

func newTransaction(account CreditAccount, amount Credits, change BalanceChange, transactionType TransactionType, description string, metadata Metadata, idempotencyKey string, now time.Time) (CreditTransaction, error) {
	transactionID, err := GenerateTransactionID()
	if err != nil {
		return CreditTransaction{}, err
	}
	return CreditTransaction{
		ID:             transactionID,
		UserID:         account.UserID,
		AccountID:      account.ID,
		Amount:         amount,
		BalanceBefore:  change.Before,
		BalanceAfter:   change.After,
		Type:           transactionType,
		Description:    strings.TrimSpace(description),
		Metadata:       metadata,
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
		CreatedAt:      now,
	}, nil
}

func (service *Service) invalidateBalance(ctx context.Context, userID UserID) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(ctx, userID); err != nil {
		service.logOperation(ctx, OperationLog{
			Operation: OperationCacheInvalidate,
			UserID:    userID,
			Error:     err,
		})
	}
}

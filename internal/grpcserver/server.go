package grpcserver

import (
	"context"
	"errors"
	"strings"

	creditv1 "github.com/MarkoPoloResearchLab/creditledger/api/credit/v1"
	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorInsufficientCredits     = "insufficient_credits"
	errorWeeklyLimitReached      = "weekly_limit_reached"
	errorAccountNotFound         = "account_not_found"
	errorUnknownCreditPack       = "unknown_credit_pack"
	errorDuplicateIdempotencyKey = "duplicate_idempotency_key"
	errorInvalidUserID           = "invalid_user_id"
	errorInvalidAmount           = "invalid_amount"
	errorInvalidTransactionType  = "invalid_transaction_type"
	errorInvalidTransactionID    = "invalid_transaction_id"
	errorInvalidMetadata         = "invalid_metadata_json"
	errorInvalidCost             = "invalid_raw_cost_eur"
)

// CreditServiceServer exposes the credit ledger over gRPC.
type CreditServiceServer struct {
	creditv1.UnimplementedCreditServiceServer
	creditService *ledger.Service
}

// NewCreditServiceServer constructs a gRPC server for the ledger service.
func NewCreditServiceServer(creditService *ledger.Service) *CreditServiceServer {
	return &CreditServiceServer{creditService: creditService}
}

func (service *CreditServiceServer) GetBalance(ctx context.Context, request *creditv1.BalanceRequest) (*creditv1.BalanceResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	balance, operationError := service.creditService.GetBalance(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.BalanceResponse{UserId: userID.String(), Balance: balance.Int64()}, nil
}

func (service *CreditServiceServer) CanAfford(ctx context.Context, request *creditv1.CanAffordRequest) (*creditv1.CanAffordResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	canAfford, operationError := service.creditService.CanAfford(ctx, userID, ledger.Credits(request.Amount))
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.CanAffordResponse{CanAfford: canAfford}, nil
}

func (service *CreditServiceServer) AddCredits(ctx context.Context, request *creditv1.AddCreditsRequest) (*creditv1.TransactionResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	amount, err := ledger.NewPositiveCredits(request.Amount)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transactionType, err := ledger.ParseTransactionType(request.Type)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	metadata, err := ledger.UnmarshalMetadata([]byte(request.MetadataJson))
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, operationError := service.creditService.AddCredits(ctx, ledger.AddCreditsRequest{
		UserID:         userID,
		Amount:         amount,
		Type:           transactionType,
		Description:    request.Description,
		Metadata:       metadata,
		IdempotencyKey: request.IdempotencyKey,
	})
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.TransactionResponse{Transaction: toTransaction(transaction)}, nil
}

func (service *CreditServiceServer) DeductCredits(ctx context.Context, request *creditv1.DeductCreditsRequest) (*creditv1.TransactionResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	amount, err := ledger.NewPositiveCredits(request.Amount)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	rawCost, err := parseRawCost(request.RawCostEur)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, operationError := service.creditService.DeductCredits(ctx, ledger.DeductCreditsRequest{
		UserID:           userID,
		Amount:           amount,
		RawCostEUR:       rawCost,
		AIProvider:       request.AiProvider,
		AIModel:          request.AiModel,
		RawTokenCount:    request.RawTokenCount,
		TrailerProjectID: request.TrailerProjectId,
		TrailerTaskID:    request.TrailerTaskId,
		Description:      request.Description,
		IdempotencyKey:   request.IdempotencyKey,
	})
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.TransactionResponse{Transaction: toTransaction(transaction)}, nil
}

func (service *CreditServiceServer) RefundCredits(ctx context.Context, request *creditv1.RefundCreditsRequest) (*creditv1.TransactionResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	amount, err := ledger.NewPositiveCredits(request.Amount)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, operationError := service.creditService.RefundCredits(ctx, ledger.RefundCreditsRequest{
		UserID:                userID,
		Amount:                amount,
		Description:           request.Description,
		OriginalTransactionID: request.OriginalTransactionId,
		Notes:                 request.Notes,
		IdempotencyKey:        request.IdempotencyKey,
	})
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.TransactionResponse{Transaction: toTransaction(transaction)}, nil
}

func (service *CreditServiceServer) PurchasePack(ctx context.Context, request *creditv1.PurchasePackRequest) (*creditv1.TransactionResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, operationError := service.creditService.PurchasePack(ctx, userID, request.PackId, request.PaymentReference)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.TransactionResponse{Transaction: toTransaction(transaction)}, nil
}

func (service *CreditServiceServer) GetHistory(ctx context.Context, request *creditv1.HistoryRequest) (*creditv1.HistoryResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	query := ledger.HistoryQuery{Page: int(request.Page), PageSize: int(request.PageSize)}
	if strings.TrimSpace(request.Type) != "" {
		transactionType, err := ledger.ParseTransactionType(request.Type)
		if err != nil {
			return nil, mapToGRPCError(err)
		}
		query.Type = &transactionType
	}
	page, operationError := service.creditService.GetHistory(ctx, userID, query)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &creditv1.HistoryResponse{
		Transactions: make([]*creditv1.Transaction, 0, len(page.Transactions)),
		Total:        page.Total,
		Page:         int32(page.Page),
		PageSize:     int32(page.PageSize),
		TotalPages:   int32(page.TotalPages),
	}
	for _, transaction := range page.Transactions {
		response.Transactions = append(response.Transactions, toTransaction(transaction))
	}
	return response, nil
}

func (service *CreditServiceServer) CheckWeeklyFree(ctx context.Context, request *creditv1.WeeklyFreeRequest) (*creditv1.WeeklyFreeResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	remaining, operationError := service.creditService.HasWeeklyFreeRemaining(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.WeeklyFreeResponse{Remaining: remaining, Limit: ledger.WeeklyFreeLimit}, nil
}

func (service *CreditServiceServer) UseWeeklyFree(ctx context.Context, request *creditv1.WeeklyFreeRequest) (*creditv1.WeeklyFreeResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	account, operationError := service.creditService.ConsumeWeeklyFree(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.WeeklyFreeResponse{
		Remaining:    account.WeeklyFreeUsed < ledger.WeeklyFreeLimit,
		Used:         int32(account.WeeklyFreeUsed),
		Limit:        ledger.WeeklyFreeLimit,
		ResetUnixUtc: account.WeeklyFreeReset.UTC().Unix(),
	}, nil
}

func (service *CreditServiceServer) EstimateCreditCost(ctx context.Context, request *creditv1.EstimateRequest) (*creditv1.EstimateResponse, error) {
	rawCost, err := parseRawCost(request.RawCostEur)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	credits, err := ledger.EstimateCreditCost(rawCost)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	charge := ledger.ComputeUsageCharge(rawCost)
	return &creditv1.EstimateResponse{
		Credits:         credits.Int64(),
		CommissionEur:   charge.CommissionEUR.StringFixed(ledger.MoneyScale),
		TotalChargedEur: charge.TotalChargedEUR.StringFixed(ledger.MoneyScale),
	}, nil
}

func (service *CreditServiceServer) ListCreditPacks(ctx context.Context, request *creditv1.Empty) (*creditv1.CreditPacksResponse, error) {
	packs := ledger.DefaultCreditPacks()
	response := &creditv1.CreditPacksResponse{Packs: make([]*creditv1.CreditPack, 0, len(packs))}
	for _, pack := range packs {
		response.Packs = append(response.Packs, &creditv1.CreditPack{
			Id:             pack.ID,
			Name:           pack.Name,
			Credits:        pack.BaseCredits.Int64(),
			BonusCredits:   pack.BonusCredits.Int64(),
			TotalCredits:   pack.TotalCredits().Int64(),
			PriceEur:       pack.PriceEUR.StringFixed(2),
			PricePerCredit: pack.PricePerCredit().StringFixed(ledger.MoneyScale),
			Features:       pack.Features,
			Popular:        pack.Popular,
			SortOrder:      int32(pack.SortOrder),
		})
	}
	return response, nil
}

func (service *CreditServiceServer) ReconcileAccount(ctx context.Context, request *creditv1.ReconcileRequest) (*creditv1.ReconcileResponse, error) {
	userID, err := ledger.NewUserID(request.UserId)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	reconciliation, operationError := service.creditService.ReconcileAccount(ctx, userID)
	if operationError != nil && !errors.Is(operationError, ledger.ErrLedgerMismatch) {
		return nil, mapToGRPCError(operationError)
	}
	return &creditv1.ReconcileResponse{
		Balanced:          operationError == nil,
		Balance:           reconciliation.Account.Balance.Int64(),
		LedgerSum:         reconciliation.LedgerSum.Int64(),
		TransactionCount:  reconciliation.TransactionCount,
		InconsistentCount: reconciliation.InconsistentCount,
	}, nil
}

func parseRawCost(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ledger.ErrInvalidCost
	}
	if err := ledger.ValidateRawCost(value); err != nil {
		return decimal.Zero, err
	}
	return value, nil
}

func toTransaction(transaction ledger.CreditTransaction) *creditv1.Transaction {
	message := &creditv1.Transaction{
		Id:             transaction.ID.String(),
		UserId:         transaction.UserID.String(),
		AccountId:      transaction.AccountID.String(),
		Amount:         transaction.Amount.Int64(),
		BalanceBefore:  transaction.BalanceBefore.Int64(),
		BalanceAfter:   transaction.BalanceAfter.Int64(),
		Type:           transaction.Type.String(),
		Description:    transaction.Description,
		IdempotencyKey: transaction.IdempotencyKey,
		CreatedUnixUtc: transaction.CreatedAt.UTC().Unix(),
	}
	if usage := transaction.Usage; usage != nil {
		message.AiProvider = usage.AIProvider
		message.AiModel = usage.AIModel
		message.RawTokenCount = usage.RawTokenCount
		message.RawCostEur = usage.RawCostEUR.StringFixed(ledger.MoneyScale)
		message.CommissionEur = usage.CommissionEUR.StringFixed(ledger.MoneyScale)
		message.TotalChargedEur = usage.TotalChargedEUR.StringFixed(ledger.MoneyScale)
		message.TrailerProjectId = usage.TrailerProjectID
		message.TrailerTaskId = usage.TrailerTaskID
	}
	if !transaction.Metadata.IsEmpty() {
		if payload, err := ledger.MarshalMetadata(transaction.Metadata); err == nil {
			message.MetadataJson = string(payload)
		}
	}
	return message
}

func mapToGRPCError(source error) error {
	if errors.Is(source, ledger.ErrInvalidUserID) {
		return status.Error(codes.InvalidArgument, errorInvalidUserID)
	}
	if errors.Is(source, ledger.ErrInvalidAmount) {
		return status.Error(codes.InvalidArgument, errorInvalidAmount)
	}
	if errors.Is(source, ledger.ErrInvalidTransactionType) {
		return status.Error(codes.InvalidArgument, errorInvalidTransactionType)
	}
	if errors.Is(source, ledger.ErrInvalidTransactionID) {
		return status.Error(codes.InvalidArgument, errorInvalidTransactionID)
	}
	if errors.Is(source, ledger.ErrInvalidMetadata) {
		return status.Error(codes.InvalidArgument, errorInvalidMetadata)
	}
	if errors.Is(source, ledger.ErrInvalidCost) {
		return status.Error(codes.InvalidArgument, errorInvalidCost)
	}
	if errors.Is(source, ledger.ErrInsufficientCredits) {
		return status.Error(codes.FailedPrecondition, errorInsufficientCredits)
	}
	if errors.Is(source, ledger.ErrWeeklyLimitReached) {
		return status.Error(codes.FailedPrecondition, errorWeeklyLimitReached)
	}
	if errors.Is(source, ledger.ErrAccountNotFound) {
		return status.Error(codes.NotFound, errorAccountNotFound)
	}
	if errors.Is(source, ledger.ErrUnknownCreditPack) {
		return status.Error(codes.NotFound, errorUnknownCreditPack)
	}
	if errors.Is(source, ledger.ErrDuplicateIdempotencyKey) {
		return status.Error(codes.AlreadyExists, errorDuplicateIdempotencyKey)
	}
	return status.Error(codes.Internal, source.Error())
}

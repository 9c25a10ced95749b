package ledger

import (
	"context"
	"math"
)

// HistoryQuery selects a page of a user's transactions.
type HistoryQuery struct {
	Page     int
	PageSize int
	Type     *TransactionType
}

// HistoryPage is one page of transactions, newest first.
type HistoryPage struct {
	Transactions []CreditTransaction
	Total        int64
	Page         int
	PageSize     int
	TotalPages   int
}

func normalizeHistoryQuery(query HistoryQuery) HistoryQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	switch {
	case query.PageSize == 0:
		query.PageSize = defaultHistoryPageSize
	case query.PageSize < 1:
		query.PageSize = 1
	case query.PageSize > maxHistoryPageSize:
		query.PageSize = maxHistoryPageSize
	}
	if maxPage := math.MaxInt / query.PageSize; query.Page > maxPage {
		query.Page = maxPage
	}
	return query
}

// GetHistory returns a page of the user's transactions ordered newest first.
// An unknown user yields an empty page.
func (service *Service) GetHistory(ctx context.Context, userID UserID, query HistoryQuery) (HistoryPage, error) {
	if userID.IsZero() {
		return HistoryPage{}, ErrInvalidUserID
	}
	normalized := normalizeHistoryQuery(query)
	filter := TransactionFilter{
		Type:   normalized.Type,
		Offset: (normalized.Page - 1) * normalized.PageSize,
		Limit:  normalized.PageSize,
	}
	transactions, total, err := service.store.ListTransactions(ctx, userID, filter)
	if err != nil {
		return HistoryPage{}, WrapError("service", errorSubjectHistory, errorCodeStore, err)
	}
	totalPages := int((total + int64(normalized.PageSize) - 1) / int64(normalized.PageSize))
	if transactions == nil {
		transactions = []CreditTransaction{}
	}
	return HistoryPage{
		Transactions: transactions,
		Total:        total,
		Page:         normalized.Page,
		PageSize:     normalized.PageSize,
		TotalPages:   totalPages,
	}, nil
}

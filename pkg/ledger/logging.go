package ledger

import "context"

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing ledger operation.
// Transaction is set only when the operation committed a ledger row.
type OperationLog struct {
	Operation   string
	UserID      UserID
	Amount      Credits
	Type        TransactionType
	Transaction *CreditTransaction
	Status      string
	Error       error
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) {
		service.logger = logger
	}
}

// WithBalanceCache wires a read-through cache for GetBalance.
func WithBalanceCache(cache BalanceCache) ServiceOption {
	return func(service *Service) {
		service.cache = cache
	}
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Error != nil {
		entry.Status = OperationStatusError
		entry.Transaction = nil
	} else {
		entry.Status = OperationStatusOK
	}
	service.logger.LogOperation(ctx, entry)
}

func committedTransaction(transaction CreditTransaction, err error) *CreditTransaction {
	if err != nil {
		return nil
	}
	return &transaction
}

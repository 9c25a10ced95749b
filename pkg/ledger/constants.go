package ledger

// Operation names reported through OperationLog.
const (
	OperationAddCredits      = "add_credits"
	OperationDeductCredits   = "deduct_credits"
	OperationRefundCredits   = "refund_credits"
	OperationPurchasePack    = "purchase_pack"
	OperationConsumeWeekly   = "consume_weekly_free"
	OperationReconcile       = "reconcile_account"
	OperationCacheInvalidate = "cache_invalidate"
)

// Operation statuses reported through OperationLog.
const (
	OperationStatusOK    = "ok"
	OperationStatusError = "error"
)

const (
	purchaseIdempotencyPrefix = "purchase:"

	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100

	errorSubjectAccount     = "account"
	errorSubjectTransaction = "transaction"
	errorSubjectWeeklyFree  = "weekly_free"
	errorSubjectHistory     = "history"

	errorCodeStore = "store"
)

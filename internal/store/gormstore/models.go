package gormstore

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Account represents the credit_accounts table.
type Account struct {
	ID                  string    `gorm:"primaryKey;type:varchar(64)"`
	UserID              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_credit_accounts_user"`
	Balance             int64     `gorm:"not null;default:0;check:chk_credit_accounts_balance,balance >= 0"`
	TotalPurchased      int64     `gorm:"not null;default:0"`
	TotalGranted        int64     `gorm:"not null;default:0"`
	TotalUsed           int64     `gorm:"not null;default:0"`
	TotalRefunded       int64     `gorm:"not null;default:0"`
	WeeklyFreeUsed      int       `gorm:"not null;default:0"`
	WeeklyFreeResetUnix int64     `gorm:"column:weekly_free_reset_unix;not null"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (Account) TableName() string { return "credit_accounts" }

// Transaction mirrors the append-only credit_transactions table.
type Transaction struct {
	ID               string              `gorm:"primaryKey;type:varchar(64)"`
	UserID           string              `gorm:"type:varchar(255);not null;index:idx_credit_transactions_user_created,priority:1"`
	AccountID        string              `gorm:"type:varchar(64);not null;index:idx_credit_transactions_account;uniqueIndex:idx_credit_transactions_account_idempotency,priority:1"`
	Amount           int64               `gorm:"not null"`
	BalanceBefore    int64               `gorm:"not null"`
	BalanceAfter     int64               `gorm:"not null"`
	Type             string              `gorm:"type:varchar(32);not null;index:idx_credit_transactions_type"`
	Description      string              `gorm:"not null;default:''"`
	AIProvider       *string             `gorm:"column:ai_provider"`
	AIModel          *string             `gorm:"column:ai_model"`
	RawTokenCount    *int64              `gorm:"column:raw_token_count"`
	RawCostEUR       decimal.NullDecimal `gorm:"column:raw_cost_eur;type:numeric(14,4)"`
	CommissionEUR    decimal.NullDecimal `gorm:"column:commission_eur;type:numeric(14,4)"`
	TotalChargedEUR  decimal.NullDecimal `gorm:"column:total_charged_eur;type:numeric(14,4)"`
	TrailerProjectID *string             `gorm:"column:trailer_project_id"`
	TrailerTaskID    *string             `gorm:"column:trailer_task_id"`
	Metadata         datatypes.JSON      `gorm:"not null"`
	IdempotencyKey   *string             `gorm:"type:varchar(255);uniqueIndex:idx_credit_transactions_account_idempotency,priority:2"`
	CreatedAt        time.Time           `gorm:"not null;index:idx_credit_transactions_user_created,priority:2"`
}

func (Transaction) TableName() string { return "credit_transactions" }

// Models lists every table managed by the store, in dependency order.
func Models() []any {
	return []any{&Account{}, &Transaction{}}
}

package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RefundMetadata links a refund to the transaction it reverses.
type RefundMetadata struct {
	OriginalTransactionID string `json:"originalTransactionId"`
}

// PurchaseMetadata describes the pack bought by a PACK_PURCHASE.
type PurchaseMetadata struct {
	PackID           string `json:"packId"`
	PaymentReference string `json:"paymentReference,omitempty"`
}

// GrantMetadata describes who granted credits and why.
type GrantMetadata struct {
	GrantedBy string `json:"grantedBy,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Metadata holds the typed, type-specific context of a transaction.
type Metadata struct {
	Refund   *RefundMetadata   `json:"refund,omitempty"`
	Purchase *PurchaseMetadata `json:"purchase,omitempty"`
	Grant    *GrantMetadata    `json:"grant,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// IsEmpty reports whether no variant and no notes are set.
func (metadata Metadata) IsEmpty() bool {
	return metadata.Refund == nil && metadata.Purchase == nil && metadata.Grant == nil && len(metadata.Notes) == 0
}

// ValidateFor rejects variants that do not belong to the transaction type.
func (metadata Metadata) ValidateFor(transactionType TransactionType) error {
	if metadata.Refund != nil && transactionType != TransactionRefund {
		return fmt.Errorf("%w: refund metadata on %s", ErrInvalidMetadata, transactionType)
	}
	if metadata.Purchase != nil {
		if transactionType != TransactionPackPurchase {
			return fmt.Errorf("%w: purchase metadata on %s", ErrInvalidMetadata, transactionType)
		}
		if strings.TrimSpace(metadata.Purchase.PackID) == "" {
			return fmt.Errorf("%w: purchase metadata without pack id", ErrInvalidMetadata)
		}
	}
	if metadata.Grant != nil {
		switch transactionType {
		case TransactionAdminGrant, TransactionSubscriptionGrant, TransactionContestPrize, TransactionReferralBonus, TransactionPromoCode:
		default:
			return fmt.Errorf("%w: grant metadata on %s", ErrInvalidMetadata, transactionType)
		}
	}
	return nil
}

// MarshalMetadata encodes metadata for storage; empty metadata encodes as {}.
func MarshalMetadata(metadata Metadata) ([]byte, error) {
	if metadata.IsEmpty() {
		return []byte("{}"), nil
	}
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return encoded, nil
}

// UnmarshalMetadata decodes stored metadata.
func UnmarshalMetadata(raw []byte) (Metadata, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return Metadata{}, nil
	}
	var metadata Metadata
	if err := json.Unmarshal([]byte(trimmed), &metadata); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return metadata, nil
}

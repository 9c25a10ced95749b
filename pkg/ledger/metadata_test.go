package ledger

import "testing"

func TestMetadataValidateFor(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name            string
		metadata        Metadata
		transactionType TransactionType
		wantErr         bool
	}{
		{name: "notes on anything", metadata: Metadata{Notes: map[string]string{"ticket": "42"}}, transactionType: TransactionAIUsage},
		{name: "refund on refund", metadata: Metadata{Refund: &RefundMetadata{OriginalTransactionID: "ctxn_x"}}, transactionType: TransactionRefund},
		{name: "refund on grant", metadata: Metadata{Refund: &RefundMetadata{}}, transactionType: TransactionAdminGrant, wantErr: true},
		{name: "purchase on purchase", metadata: Metadata{Purchase: &PurchaseMetadata{PackID: "starter"}}, transactionType: TransactionPackPurchase},
		{name: "purchase without pack", metadata: Metadata{Purchase: &PurchaseMetadata{}}, transactionType: TransactionPackPurchase, wantErr: true},
		{name: "grant on promo", metadata: Metadata{Grant: &GrantMetadata{GrantedBy: "admin"}}, transactionType: TransactionPromoCode},
		{name: "grant on purchase", metadata: Metadata{Grant: &GrantMetadata{}}, transactionType: TransactionPackPurchase, wantErr: true},
	}
	for _, testCase := range testCases {
		err := testCase.metadata.ValidateFor(testCase.transactionType)
		if testCase.wantErr {
			expectError(test, err, ErrInvalidMetadata)
			continue
		}
		if err != nil {
			test.Fatalf("%s: unexpected error %v", testCase.name, err)
		}
	}
}

func TestMetadataEncoding(test *testing.T) {
	test.Parallel()
	encoded, err := MarshalMetadata(Metadata{})
	if err != nil || string(encoded) != "{}" {
		test.Fatalf("expected {}, got %q (%v)", encoded, err)
	}
	decoded, err := UnmarshalMetadata([]byte(`{"refund":{"originalTransactionId":"ctxn_1"},"notes":{"by":"ops"}}`))
	if err != nil {
		test.Fatalf("decode: %v", err)
	}
	if decoded.Refund == nil || decoded.Refund.OriginalTransactionID != "ctxn_1" || decoded.Notes["by"] != "ops" {
		test.Fatalf("unexpected metadata %+v", decoded)
	}
	if _, err := UnmarshalMetadata([]byte("not-json")); err == nil {
		test.Fatalf("expected decode error")
	}
}

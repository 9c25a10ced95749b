package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type publishedMessage struct {
	exchange string
	key      string
	message  amqp.Publishing
}

type stubChannel struct {
	published  []publishedMessage
	publishErr error
	closed     bool
}

func (channel *stubChannel) PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if channel.publishErr != nil {
		return channel.publishErr
	}
	channel.published = append(channel.published, publishedMessage{exchange: exchange, key: key, message: msg})
	return nil
}

func (channel *stubChannel) Close() error {
	channel.closed = true
	return nil
}

func mustTransaction(test *testing.T, transactionType ledger.TransactionType, amount ledger.Credits) ledger.CreditTransaction {
	test.Helper()
	transactionID, err := ledger.GenerateTransactionID()
	if err != nil {
		test.Fatalf("transaction id: %v", err)
	}
	accountID, err := ledger.GenerateAccountID()
	if err != nil {
		test.Fatalf("account id: %v", err)
	}
	userID, _ := ledger.NewUserID("user-1")
	return ledger.CreditTransaction{
		ID:            transactionID,
		UserID:        userID,
		AccountID:     accountID,
		Type:          transactionType,
		Amount:        amount,
		BalanceBefore: 100,
		BalanceAfter:  100 + amount,
		CreatedAt:     time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC),
	}
}

func TestRoutingKey(test *testing.T) {
	test.Parallel()
	if got := RoutingKey(ledger.TransactionAIUsage); got != "credit.transaction.ai_usage" {
		test.Fatalf("routing key = %q", got)
	}
	if got := RoutingKey(ledger.TransactionPackPurchase); got != "credit.transaction.pack_purchase" {
		test.Fatalf("routing key = %q", got)
	}
}

func TestLogOperationPublishesCommittedTransaction(test *testing.T) {
	test.Parallel()
	channel := &stubChannel{}
	publisher := NewPublisher(channel, "credit-events", nil)
	transaction := mustTransaction(test, ledger.TransactionAIUsage, -40)
	transaction.Usage = &ledger.UsageCharge{AIProvider: "openai", TotalChargedEUR: decimal.RequireFromString("1.80")}

	publisher.LogOperation(context.Background(), ledger.OperationLog{
		Operation:   ledger.OperationDeductCredits,
		Transaction: &transaction,
		Status:      ledger.OperationStatusOK,
	})

	if len(channel.published) != 1 {
		test.Fatalf("expected one message, got %d", len(channel.published))
	}
	published := channel.published[0]
	if published.exchange != "credit-events" || published.key != "credit.transaction.ai_usage" {
		test.Fatalf("unexpected destination %s/%s", published.exchange, published.key)
	}
	if published.message.MessageId != transaction.ID.String() || published.message.DeliveryMode != amqp.Persistent {
		test.Fatalf("unexpected message headers: %+v", published.message)
	}
	var event TransactionEvent
	if err := json.Unmarshal(published.message.Body, &event); err != nil {
		test.Fatalf("decode event: %v", err)
	}
	if event.Amount != -40 || event.BalanceAfter != 60 || event.TotalChargedEUR != "1.8000" || event.AIProvider != "openai" {
		test.Fatalf("unexpected event: %+v", event)
	}
}

func TestLogOperationSkipsFailures(test *testing.T) {
	test.Parallel()
	channel := &stubChannel{}
	publisher := NewPublisher(channel, "credit-events", nil)
	publisher.LogOperation(context.Background(), ledger.OperationLog{
		Operation: ledger.OperationDeductCredits,
		Status:    ledger.OperationStatusError,
		Error:     ledger.ErrInsufficientCredits,
	})
	if len(channel.published) != 0 {
		test.Fatalf("failed operations must not be published")
	}
}

func TestPublishErrorIsLogged(test *testing.T) {
	test.Parallel()
	core, logs := observer.New(zapcore.WarnLevel)
	channel := &stubChannel{publishErr: amqp.ErrClosed}
	publisher := NewPublisher(channel, "credit-events", zap.New(core))
	transaction := mustTransaction(test, ledger.TransactionRefund, 10)

	publisher.LogOperation(context.Background(), ledger.OperationLog{Operation: ledger.OperationRefundCredits, Transaction: &transaction})

	if logs.Len() != 1 {
		test.Fatalf("expected publish failure to be logged, got %d entries", logs.Len())
	}
	if err := publisher.Close(); err != nil || !channel.closed {
		test.Fatalf("close: %v closed=%v", err, channel.closed)
	}
}

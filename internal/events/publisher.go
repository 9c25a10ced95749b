// Package events publishes committed ledger transactions to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	routingKeyPrefix = "credit.transaction."
	contentTypeJSON  = "application/json"
	publishTimeout   = 5 * time.Second
	exchangeKind     = "topic"
)

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher is a ledger.OperationLogger that emits one message per committed
// transaction. Failed operations are not published.
type Publisher struct {
	mutex      sync.Mutex
	channel    Channel
	connection io.Closer
	exchange   string
	logger     *zap.Logger
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url string, exchange string, logger *zap.Logger) (*Publisher, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = connection.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	publisher := NewPublisher(channel, exchange, logger)
	publisher.connection = connection
	return publisher, nil
}

// NewPublisher wraps an already configured channel.
func NewPublisher(channel Channel, exchange string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{channel: channel, exchange: exchange, logger: logger}
}

// RoutingKey returns the topic routing key of a transaction type.
func RoutingKey(transactionType ledger.TransactionType) string {
	return routingKeyPrefix + strings.ToLower(transactionType.String())
}

// LogOperation implements ledger.OperationLogger.
func (publisher *Publisher) LogOperation(ctx context.Context, entry ledger.OperationLog) {
	if entry.Transaction == nil {
		return
	}
	if err := publisher.Publish(ctx, *entry.Transaction); err != nil {
		publisher.logger.Warn("transaction event publish failed",
			zap.String("transaction_id", entry.Transaction.ID.String()),
			zap.Error(err),
		)
	}
}

// Publish sends transaction as a persistent JSON message.
func (publisher *Publisher) Publish(ctx context.Context, transaction ledger.CreditTransaction) error {
	body, err := json.Marshal(NewTransactionEvent(transaction))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	publisher.mutex.Lock()
	defer publisher.mutex.Unlock()
	return publisher.channel.PublishWithContext(publishCtx, publisher.exchange, RoutingKey(transaction.Type), false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    transaction.ID.String(),
		Timestamp:    transaction.CreatedAt.UTC(),
		Type:         transaction.Type.String(),
		Body:         body,
	})
}

// Close releases the channel and, when dialed, the connection.
func (publisher *Publisher) Close() error {
	publisher.mutex.Lock()
	defer publisher.mutex.Unlock()
	err := publisher.channel.Close()
	if publisher.connection != nil {
		if closeErr := publisher.connection.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

// TransactionEvent is the wire form of a committed transaction.
type TransactionEvent struct {
	TransactionID    string          `json:"transaction_id"`
	UserID           string          `json:"user_id"`
	AccountID        string          `json:"account_id"`
	Type             string          `json:"type"`
	Amount           int64           `json:"amount"`
	BalanceBefore    int64           `json:"balance_before"`
	BalanceAfter     int64           `json:"balance_after"`
	Description      string          `json:"description,omitempty"`
	AIProvider       string          `json:"ai_provider,omitempty"`
	AIModel          string          `json:"ai_model,omitempty"`
	TotalChargedEUR  string          `json:"total_charged_eur,omitempty"`
	TrailerProjectID string          `json:"trailer_project_id,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// NewTransactionEvent projects a transaction onto its event form.
func NewTransactionEvent(transaction ledger.CreditTransaction) TransactionEvent {
	event := TransactionEvent{
		TransactionID: transaction.ID.String(),
		UserID:        transaction.UserID.String(),
		AccountID:     transaction.AccountID.String(),
		Type:          transaction.Type.String(),
		Amount:        transaction.Amount.Int64(),
		BalanceBefore: transaction.BalanceBefore.Int64(),
		BalanceAfter:  transaction.BalanceAfter.Int64(),
		Description:   transaction.Description,
		CreatedAt:     transaction.CreatedAt.UTC(),
	}
	if usage := transaction.Usage; usage != nil {
		event.AIProvider = usage.AIProvider
		event.AIModel = usage.AIModel
		event.TotalChargedEUR = usage.TotalChargedEUR.StringFixed(ledger.MoneyScale)
		event.TrailerProjectID = usage.TrailerProjectID
	}
	if !transaction.Metadata.IsEmpty() {
		if encoded, err := ledger.MarshalMetadata(transaction.Metadata); err == nil {
			event.Metadata = encoded
		}
	}
	return event
}

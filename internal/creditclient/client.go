// Package creditclient dials a remote creditd gRPC endpoint.
package creditclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	creditv1 "github.com/MarkoPoloResearchLab/creditledger/api/credit/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultDialTimeout = 5 * time.Second

// Config describes how to reach creditd.
type Config struct {
	Address     string
	Insecure    bool
	DialTimeout time.Duration
}

// Client is a connected CreditServiceClient.
type Client struct {
	creditv1.CreditServiceClient
	connection *grpc.ClientConn
}

// Dial connects and blocks until the connection is ready or the dial timeout elapses.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("creditd address is required")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	dialOptions := []grpc.DialOption{}
	if cfg.Insecure {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}
	connection, err := grpc.NewClient(cfg.Address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("connect creditd: %w", err)
	}
	readyCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	connection.Connect()
	if err := waitForClientReady(readyCtx, connection); err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("connect creditd: %w", err)
	}
	return &Client{
		CreditServiceClient: creditv1.NewCreditServiceClient(connection),
		connection:          connection,
	}, nil
}

// Close releases the underlying connection.
func (client *Client) Close() error {
	return client.connection.Close()
}

func waitForClientReady(ctx context.Context, connection *grpc.ClientConn) error {
	for {
		state := connection.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if state == connectivity.Shutdown {
			return errors.New("grpc connection shutdown before ready")
		}
		if !connection.WaitForStateChange(ctx, state) {
			if err := ctx.Err(); err != nil {
				return err
			}
			return errors.New("grpc connection failed to reach ready state")
		}
	}
}

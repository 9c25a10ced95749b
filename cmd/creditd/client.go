package main

import (
	"fmt"
	"time"

	creditv1 "github.com/MarkoPoloResearchLab/creditledger/api/credit/v1"
	"github.com/MarkoPoloResearchLab/creditledger/internal/creditclient"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const defaultClientAddr = "localhost:7000"

// newClientCommand groups operator calls against a running creditd.
func newClientCommand() *cobra.Command {
	clientConfig := creditclient.Config{}
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running creditd over gRPC",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&clientConfig.Address, "addr", defaultClientAddr, "creditd gRPC address")
	flags.BoolVar(&clientConfig.Insecure, "insecure", false, "disable TLS")
	flags.DurationVar(&clientConfig.DialTimeout, "dial-timeout", 5*time.Second, "connection timeout")

	withClient := func(run func(cmd *cobra.Command, client *creditclient.Client) (proto.Message, error)) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			client, err := creditclient.Dial(cmd.Context(), clientConfig)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()
			response, err := run(cmd, client)
			if err != nil {
				return err
			}
			payload, err := protojson.MarshalOptions{Multiline: true, UseProtoNames: true, EmitUnpopulated: true}.Marshal(response)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return err
		}
	}

	var userID string
	balance := &cobra.Command{
		Use:   "balance",
		Short: "Show a user's balance",
		RunE: withClient(func(cmd *cobra.Command, client *creditclient.Client) (proto.Message, error) {
			return client.GetBalance(cmd.Context(), &creditv1.BalanceRequest{UserId: userID})
		}),
	}
	balance.Flags().StringVar(&userID, "user", "", "user id")

	grantRequest := &creditv1.AddCreditsRequest{}
	grant := &cobra.Command{
		Use:   "grant",
		Short: "Credit a user's account",
		RunE: withClient(func(cmd *cobra.Command, client *creditclient.Client) (proto.Message, error) {
			return client.AddCredits(cmd.Context(), grantRequest)
		}),
	}
	grant.Flags().StringVar(&grantRequest.UserId, "user", "", "user id")
	grant.Flags().Int64Var(&grantRequest.Amount, "amount", 0, "credits to add")
	grant.Flags().StringVar(&grantRequest.Type, "type", "ADMIN_GRANT", "transaction type")
	grant.Flags().StringVar(&grantRequest.Description, "description", "", "ledger description")
	grant.Flags().StringVar(&grantRequest.IdempotencyKey, "idempotency-key", "", "replay protection key")

	historyRequest := &creditv1.HistoryRequest{}
	history := &cobra.Command{
		Use:   "history",
		Short: "List a user's transactions",
		RunE: withClient(func(cmd *cobra.Command, client *creditclient.Client) (proto.Message, error) {
			return client.GetHistory(cmd.Context(), historyRequest)
		}),
	}
	history.Flags().StringVar(&historyRequest.UserId, "user", "", "user id")
	history.Flags().Int32Var(&historyRequest.Page, "page", 1, "page number")
	history.Flags().Int32Var(&historyRequest.PageSize, "page-size", 20, "page size")
	history.Flags().StringVar(&historyRequest.Type, "type", "", "transaction type filter")

	packs := &cobra.Command{
		Use:   "packs",
		Short: "List credit packs",
		RunE: withClient(func(cmd *cobra.Command, client *creditclient.Client) (proto.Message, error) {
			return client.ListCreditPacks(cmd.Context(), &creditv1.Empty{})
		}),
	}

	reconcileRequest := &creditv1.ReconcileRequest{}
	reconcileAccount := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile one user's account",
		RunE: withClient(func(cmd *cobra.Command, client *creditclient.Client) (proto.Message, error) {
			return client.ReconcileAccount(cmd.Context(), reconcileRequest)
		}),
	}
	reconcileAccount.Flags().StringVar(&reconcileRequest.UserId, "user", "", "user id")

	cmd.AddCommand(balance, grant, history, packs, reconcileAccount)
	return cmd
}

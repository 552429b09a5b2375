package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
	"github.com/CM-market/cameroon-made-market-sub000/internal/checkout"
	"github.com/CM-market/cameroon-made-market-sub000/internal/payment"
)

func payCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay for the last created order",
	}

	var redirectURL string
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Initiate payment for the current order and poll until it settles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			asm := checkout.NewAssembler(a.cart, a.ordersClient(), a.kv, a.logger)
			order, ok, err := asm.CurrentOrder()
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("no current order; run `storefront checkout` first")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			poller := payment.NewPoller(a.paymentsClient(), a.logger)
			pay, err := poller.Start(ctx, api.PaymentRequest{
				OrderID:     order.ID,
				Name:        order.CustomerName,
				Phone:       order.CustomerPhone,
				RedirectURL: redirectURL,
			})
			if err != nil {
				return err
			}
			if pay.PaymentLink != "" {
				cmd.Printf("complete the payment at: %s\n", pay.PaymentLink)
			}

			final, err := poller.Watch(ctx, a.cfg.PollInterval)
			if err != nil {
				return err
			}
			cmd.Printf("payment %s: %s\n", final.TransactionID, final.Status)

			if payment.Status(final.Status) == payment.StatusCompleted {
				// Mirror the web payment screen: success clears both the
				// order snapshot and the cart.
				if err := asm.ClearCurrentOrder(); err != nil {
					a.logger.Warn("clear current order failed")
				}
				if err := a.cart.Clear(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	watch.Flags().StringVar(&redirectURL, "redirect-url", "", "URL the payment provider redirects to")

	check := &cobra.Command{
		Use:   "check <transactionId>",
		Short: "Probe a transaction's status once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			pay, err := a.paymentsClient().Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("payment %s: %s (%.0f FCFA)\n", pay.TransactionID, pay.Status, pay.Amount)
			return nil
		},
	}

	cmd.AddCommand(watch, check)
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/CM-market/cameroon-made-market-sub000/internal/checkout"
)

func checkoutCmd(configPath *string) *cobra.Command {
	var form checkout.ShippingForm
	var method string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Create an order from the cart and the shipping details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			asm := checkout.NewAssembler(a.cart, a.ordersClient(), a.kv, a.logger)
			order, err := asm.Submit(cmd.Context(), form, method)
			if err != nil {
				return err
			}

			cmd.Printf("order %s created: %.0f FCFA (%s)\n", order.ID, order.Total, order.Status)
			cmd.Println("run `storefront pay watch` to pay for it")
			return nil
		},
	}

	cmd.Flags().StringVar(&form.CustomerName, "name", "", "customer full name")
	cmd.Flags().StringVar(&form.CustomerPhone, "phone", "", "customer phone (digits only)")
	cmd.Flags().StringVar(&form.DeliveryAddress, "address", "", "street address")
	cmd.Flags().StringVar(&form.City, "city", "", "city")
	cmd.Flags().StringVar(&form.Region, "region", "", "region")
	cmd.Flags().StringVar(&method, "method", "mobileMoney", "payment method (mobileMoney, card, cash)")
	return cmd
}

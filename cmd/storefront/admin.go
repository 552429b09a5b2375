package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func adminCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderation dashboards (admin token required)",
	}

	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the marketplace metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			m, err := a.adminClient().Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("users: %d  vendors: %d  products: %d  orders: %d  revenue: %.0f FCFA\n",
				m.TotalUsers, m.TotalVendors, m.TotalProducts, m.TotalOrders, m.TotalRevenue)

			trends, err := a.adminClient().SalesTrends(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range trends {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %12.0f FCFA\n", t.Month, t.Sales)
			}
			return nil
		},
	}

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List products awaiting approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			products, err := a.adminClient().PendingProducts(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-40s %10.0f FCFA\n", p.ID, p.Title, p.Price)
			}
			return nil
		},
	}

	approve := &cobra.Command{
		Use:   "approve <productId>",
		Short: "Approve a pending product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.adminClient().ApproveProduct(cmd.Context(), args[0])
		},
	}

	reject := &cobra.Command{
		Use:   "reject <productId>",
		Short: "Reject a pending product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.adminClient().RejectProduct(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(dashboard, pending, approve, reject)
	return cmd
}

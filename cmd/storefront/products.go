package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func productsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	var category, sellerID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			products, err := a.productsClient().List(cmd.Context(), category, sellerID)
			if err != nil {
				return err
			}
			for _, p := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-40s %10.0f FCFA  %s\n", p.ID, p.Title, p.Price, p.Category)
			}
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "filter by category")
	list.Flags().StringVar(&sellerID, "seller", "", "filter by seller id")

	get := &cobra.Command{
		Use:   "get <productId>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.productsClient().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s\n%s\n%.0f FCFA\ncategory: %s\n", p.Title, p.Description, p.Price, p.Category)
			if p.ReturnPolicy != "" {
				cmd.Printf("return policy: %s\n", p.ReturnPolicy)
			}
			return nil
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func uploadCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a product image (runs backend content moderation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			key, err := a.imagesClient().Upload(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			cmd.Println(key)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/CM-market/cameroon-made-market-sub000/internal/cart"
	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
)

func cartCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the locally persisted cart",
	}

	var (
		qty          int
		name         string
		price        float64
		category     string
		imageRef     string
		returnPolicy string
	)
	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product to the cart (merges quantities for the same product)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p := cart.Product{
				ID:           args[0],
				Name:         name,
				Price:        price,
				Category:     category,
				ImageRef:     imageRef,
				ReturnPolicy: returnPolicy,
			}
			// When the catalog is reachable, snapshot the live product
			// fields instead of trusting flags.
			if name == "" {
				prod, err := a.productsClient().Get(cmd.Context(), args[0])
				if err != nil {
					cmd.PrintErrln("warning: catalog lookup failed, storing a bare line:", err)
				} else {
					p.Name = prod.Title
					p.Price = prod.Price
					p.Category = prod.Category
					if len(prod.ImageURLs) > 0 {
						p.ImageRef = prod.ImageURLs[0]
					}
					p.ReturnPolicy = prod.ReturnPolicy
				}
			}

			items, err := a.cart.AddItem(p, qty)
			if err != nil {
				return err
			}
			printCart(cmd, items)
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")
	add.Flags().StringVar(&name, "name", "", "product name (skips the catalog lookup)")
	add.Flags().Float64Var(&price, "price", 0, "unit price")
	add.Flags().StringVar(&category, "category", "", "product category")
	add.Flags().StringVar(&imageRef, "image", "", "product image reference")
	add.Flags().StringVar(&returnPolicy, "return-policy", "", "return policy text")

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.cart.Load()
			if err != nil {
				// Corrupt carts read as empty; say so instead of hiding it.
				cmd.PrintErrln("warning:", err)
			}
			printCart(cmd, items)
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <productId> <quantity>",
		Short: "Set a line's quantity (0 removes the line)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newQty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.cart.UpdateQuantity(args[0], newQty)
			if err != nil {
				return err
			}
			printCart(cmd, items)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <productId>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.cart.RemoveItem(args[0])
			if err != nil {
				return err
			}
			printCart(cmd, items)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.cart.Clear()
		},
	}

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Follow the cart item count as other processes change it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var watcher *localstore.Watcher
			if a.storePath != "" {
				watcher, err = localstore.NewWatcher(a.storePath)
				if err != nil {
					return err
				}
				defer watcher.Close()
			}

			badge := cart.NewBadge(a.cart, watcher, a.cfg.PollInterval, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return badge.Run(ctx) })
			g.Go(func() error {
				last := -1
				ticker := time.NewTicker(a.cfg.PollInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-ticker.C:
						if n := badge.Count(); n != last {
							last = n
							cmd.Printf("cart items: %d\n", n)
						}
					}
				}
			})
			if err := g.Wait(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.AddCommand(add, list, update, remove, clear, watch)
	return cmd
}

func printCart(cmd *cobra.Command, items []cart.LineItem) {
	if len(items) == 0 {
		cmd.Println("cart is empty")
		return
	}
	w := cmd.OutOrStdout()
	for _, it := range items {
		fmt.Fprintf(w, "%-24s %-30s x%-3d %10.0f FCFA\n", it.ProductID, it.Name, it.Quantity, it.UnitPrice)
	}
	fmt.Fprintf(w, "items: %d  subtotal: %.0f FCFA\n", cart.Count(items), cart.Subtotal(items))
}

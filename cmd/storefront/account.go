package main

import (
	"github.com/spf13/cobra"

	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
)

func loginCmd(configPath *string) *cobra.Command {
	var req api.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.usersClient().Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := a.sess.SetCredentials(resp.Token, resp.UserID, resp.Role, resp.FullName); err != nil {
				return err
			}
			cmd.Printf("logged in as %s (%s)\n", resp.FullName, resp.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Phone, "phone", "", "account phone number")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.Role, "role", "", "Buyer or Vendor")
	return cmd
}

func logoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session (the cart stays)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.sess.Clear()
		},
	}
}

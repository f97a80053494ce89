package main

import (
	"fmt"

	"perpus/internal/usecase"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session, err := newClient()
			if err != nil {
				return err
			}

			out, err := api.Login(cmd.Context(), &usecase.LoginInput{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			if notice := session.ConsumeNotice(); notice != "" {
				fmt.Println(notice)
			}
			fmt.Printf("Masuk sebagai %s <%s>\n", out.User.Name, out.User.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "staff email")
	cmd.Flags().StringVar(&password, "password", "", "staff password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := newClient()
			if err != nil {
				return err
			}

			if err := session.SignOut(); err != nil {
				return err
			}

			if notice := session.ConsumeNotice(); notice != "" {
				fmt.Println(notice)
			}

			return nil
		},
	}
}

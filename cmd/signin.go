package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	signinName  string
	signinEmail string
)

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in and persist the session profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, _, err := setup(context.Background())
		if err != nil {
			return err
		}

		profile, err := s.SignIn(signinName, signinEmail)
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s <%s>\n", profile.DisplayName, profile.Email)
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and clear the session profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, _, err := setup(context.Background())
		if err != nil {
			return err
		}

		s.SignOut()
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	signinCmd.Flags().StringVar(&signinName, "name", "", "display name")
	signinCmd.Flags().StringVar(&signinEmail, "email", "", "email address")
	_ = signinCmd.MarkFlagRequired("name")
	_ = signinCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(signinCmd)
	rootCmd.AddCommand(signoutCmd)
}

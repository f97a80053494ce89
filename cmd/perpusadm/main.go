// Command perpusadm is the admin console for the library service. It
// drives the client SDK only: every subcommand goes through the same
// session, stores and mutation coordinator the admin screens use.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"perpus/internal/client"

	"github.com/spf13/cobra"
)

var (
	baseURL     string
	sessionFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "perpusadm",
		Short:         "Admin console for the library service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultSession := filepath.Join(os.Getenv("HOME"), ".perpusadm", "credentials.json")

	rootCmd.PersistentFlags().StringVar(&baseURL, "server", envOr("PERPUS_SERVER", "http://localhost:8080"), "base URL of the library service")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", envOr("PERPUS_SESSION_FILE", defaultSession), "path of the credentials file")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newMemberCmd(),
		newBukuCmd(),
		newPinjamCmd(),
		newKembaliCmd(),
		newDendaCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// newClient builds the SDK entry points the subcommands share. The
// unauthorized handler prints the re-login hint; credentials are cleared
// by the session before it runs.
func newClient() (*client.APIClient, *client.Session, error) {
	store := client.NewFileCredentialStore(sessionFile)
	session, err := client.NewSession(store)
	if err != nil {
		return nil, nil, err
	}

	session.SetUnauthorizedHandler(func() {
		fmt.Fprintln(os.Stderr, "Sesi berakhir. Silakan login kembali dengan 'perpusadm login'.")
	})

	return client.NewAPIClient(baseURL, session), session, nil
}

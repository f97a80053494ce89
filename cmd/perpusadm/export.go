package main

import (
	"context"
	"fmt"
	"os"

	"perpus/internal/client"
	"perpus/internal/usecase"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var outFile string
	var memberID uint

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the loan list as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session, err := newClient()
			if err != nil {
				return err
			}

			loans := client.NewResourceStore(api.ListLoans, session.HandleUnauthorized)
			if memberID != 0 {
				loans = client.NewResourceStore(func(ctx context.Context) ([]usecase.LoanRecord, error) {
					return api.ListLoansByMember(ctx, memberID)
				}, session.HandleUnauthorized)
			}
			members := client.NewResourceStore(api.ListMembers, session.HandleUnauthorized)
			books := client.NewResourceStore(api.ListBooks, session.HandleUnauthorized)

			for _, load := range []func() error{
				func() error { return loans.Load(cmd.Context()) },
				func() error { return members.Load(cmd.Context()) },
				func() error { return books.Load(cmd.Context()) },
			} {
				if err := load(); err != nil {
					return err
				}
			}

			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := client.ExportLoansCSV(f, loans.Items(), members.Items(), books.Items()); err != nil {
				return err
			}

			fmt.Println("Laporan tersimpan di", outFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "peminjaman.csv", "output file")
	cmd.Flags().UintVar(&memberID, "riwayat", 0, "export one member's loan history only")

	return cmd
}

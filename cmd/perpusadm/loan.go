package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"perpus/internal/client"
	"perpus/internal/usecase"

	"github.com/spf13/cobra"
)

// loanWorkflow builds the borrow/return workflow with the book list
// pre-loaded for the client-side checks.
func loanWorkflow(cmd *cobra.Command) (*client.LoanWorkflow, *client.ResourceStore[usecase.LoanRecord], error) {
	api, session, err := newClient()
	if err != nil {
		return nil, nil, err
	}

	loans := client.NewResourceStore(api.ListLoans, session.HandleUnauthorized)
	books := client.NewResourceStore(api.ListBooks, session.HandleUnauthorized)

	if err := books.Load(cmd.Context()); err != nil {
		return nil, nil, err
	}

	return client.NewLoanWorkflow(api, loans, books, session), loans, nil
}

func newPinjamCmd() *cobra.Command {
	var input usecase.LoanInput
	var memberFilter uint

	cmd := &cobra.Command{
		Use:   "pinjam",
		Short: "Record a loan, or list loans with --list",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session, err := newClient()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("list") || input.IDBuku == 0 {
				return printLoans(cmd, api, session, memberFilter)
			}

			workflow, _, err := loanWorkflow(cmd)
			if err != nil {
				return err
			}

			record, err := workflow.Borrow(cmd.Context(), &input)
			if err != nil {
				return err
			}

			fmt.Printf("Peminjaman berhasil ditambahkan (id %d)\n", record.ID)

			return nil
		},
	}

	cmd.Flags().UintVar(&input.IDMember, "member", 0, "member id")
	cmd.Flags().UintVar(&input.IDBuku, "buku", 0, "book id")
	cmd.Flags().StringVar(&input.TglPinjam, "tgl-pinjam", "", "borrow date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.TglPengembalian, "tgl-kembali", "", "due date (YYYY-MM-DD)")
	cmd.Flags().Bool("list", false, "list loans instead of creating one")
	cmd.Flags().UintVar(&memberFilter, "riwayat", 0, "with --list, show one member's loan history")

	return cmd
}

func printLoans(cmd *cobra.Command, api *client.APIClient, session *client.Session, memberID uint) error {
	fetch := client.ListFunc[usecase.LoanRecord](api.ListLoans)
	if memberID != 0 {
		fetch = func(ctx context.Context) ([]usecase.LoanRecord, error) {
			return api.ListLoansByMember(ctx, memberID)
		}
	}

	store := client.NewResourceStore(fetch, session.HandleUnauthorized)
	if err := store.Load(cmd.Context()); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMEMBER\tBUKU\tTGL PINJAM\tTGL KEMBALI\tSTATUS")
	for _, l := range store.Items() {
		status := "dipinjam"
		if l.StatusPengembalian {
			status = "dikembalikan"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n",
			l.ID, l.IDMember, l.IDBuku, l.TglPinjam, l.TglPengembalian, status)
	}

	return w.Flush()
}

func newKembaliCmd() *cobra.Command {
	var fineAmount int64
	var fineKind, fineNote string

	cmd := &cobra.Command{
		Use:   "kembali <loan-id>",
		Short: "Return a borrowed book, optionally recording a fine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			workflow, loans, err := loanWorkflow(cmd)
			if err != nil {
				return err
			}

			if err := loans.Load(cmd.Context()); err != nil {
				return err
			}
			loan, ok := loans.Find(func(l usecase.LoanRecord) bool { return l.ID == id })
			if !ok {
				return fmt.Errorf("peminjaman %d tidak ditemukan", id)
			}

			var fine *client.FineDraft
			if fineAmount > 0 {
				fine = &client.FineDraft{
					JumlahDenda: fineAmount,
					JenisDenda:  fineKind,
					Deskripsi:   fineNote,
				}
			}

			if err := workflow.Return(cmd.Context(), &loan, fine); err != nil {
				return err
			}

			fmt.Println("Buku berhasil dikembalikan")

			return nil
		},
	}

	cmd.Flags().Int64Var(&fineAmount, "denda", 0, "fine amount in rupiah (0 = no fine)")
	cmd.Flags().StringVar(&fineKind, "jenis-denda", "terlambat", "fine category: terlambat, kerusakan, lainnya")
	cmd.Flags().StringVar(&fineNote, "keterangan", "", "fine description")

	return cmd
}

func newDendaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "denda",
		Short: "Inspect recorded fines",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all fines",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session, err := newClient()
			if err != nil {
				return err
			}

			store := client.NewResourceStore(api.ListFines, session.HandleUnauthorized)
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tMEMBER\tBUKU\tJUMLAH\tJENIS\tKETERANGAN")
			for _, f := range store.Items() {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\n",
					f.ID, f.IDMember, f.IDBuku, f.JumlahDenda, f.JenisDenda, f.Deskripsi)
			}

			return w.Flush()
		},
	})

	return cmd
}

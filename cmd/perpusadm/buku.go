package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"perpus/internal/client"
	"perpus/internal/usecase"

	"github.com/spf13/cobra"
)

func newBukuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buku",
		Short: "Manage the book catalog",
	}

	cmd.AddCommand(
		newBukuListCmd(),
		newBukuAddCmd(),
		newBukuUpdateCmd(),
		newBukuDeleteCmd(),
	)

	return cmd
}

func newBukuListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session, err := newClient()
			if err != nil {
				return err
			}

			store := client.NewResourceStore(api.ListBooks, session.HandleUnauthorized)
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNO RAK\tJUDUL\tPENGARANG\tTAHUN\tPENERBIT\tSTOK")
			for _, b := range store.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%d\n",
					b.ID, b.NoRak, b.Judul, b.Pengarang, b.TahunTerbit, b.Penerbit, b.Stok)
			}

			return w.Flush()
		},
	}
}

func bukuFlags(cmd *cobra.Command, input *usecase.BookInput) {
	cmd.Flags().StringVar(&input.NoRak, "no-rak", "", "shelf code")
	cmd.Flags().StringVar(&input.Judul, "judul", "", "title")
	cmd.Flags().StringVar(&input.Pengarang, "pengarang", "", "author")
	cmd.Flags().IntVar(&input.TahunTerbit, "tahun-terbit", 0, "publish year")
	cmd.Flags().StringVar(&input.Penerbit, "penerbit", "", "publisher")
	cmd.Flags().IntVar(&input.Stok, "stok", 0, "stock count")
	cmd.Flags().StringVar(&input.Detail, "detail", "", "description")
}

func newBukuAddCmd() *cobra.Command {
	var input usecase.BookInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := newClient()
			if err != nil {
				return err
			}

			record, err := api.CreateBook(cmd.Context(), &input)
			if err != nil {
				return err
			}

			fmt.Printf("Buku berhasil ditambahkan (id %d)\n", record.ID)

			return nil
		},
	}

	bukuFlags(cmd, &input)
	_ = cmd.MarkFlagRequired("no-rak")
	_ = cmd.MarkFlagRequired("judul")
	_ = cmd.MarkFlagRequired("pengarang")
	_ = cmd.MarkFlagRequired("tahun-terbit")
	_ = cmd.MarkFlagRequired("penerbit")

	return cmd
}

func newBukuUpdateCmd() *cobra.Command {
	var input usecase.BookInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book (full replace)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, _, err := newClient()
			if err != nil {
				return err
			}

			if _, err := api.UpdateBook(cmd.Context(), id, &input); err != nil {
				return err
			}

			fmt.Println("Buku berhasil diperbarui")

			return nil
		},
	}

	bukuFlags(cmd, &input)

	return cmd
}

func newBukuDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, _, err := newClient()
			if err != nil {
				return err
			}

			if err := api.DeleteBook(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println("Buku berhasil dihapus")

			return nil
		},
	}
}

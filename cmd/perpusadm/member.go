package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"perpus/internal/client"
	"perpus/internal/usecase"

	"github.com/spf13/cobra"
)

func newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage library members",
	}

	cmd.AddCommand(
		newMemberListCmd(),
		newMemberAddCmd(),
		newMemberUpdateCmd(),
		newMemberDeleteCmd(),
		newMemberKartuCmd(),
	)

	return cmd
}

func newMemberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all members",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session, err := newClient()
			if err != nil {
				return err
			}

			store := client.NewResourceStore(api.ListMembers, session.HandleUnauthorized)
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNO KTP\tNAMA\tALAMAT\tTGL LAHIR")
			for _, m := range store.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.NoKTP, m.Nama, m.Alamat, m.TglLahir)
			}

			return w.Flush()
		},
	}
}

func memberFlags(cmd *cobra.Command, input *usecase.MemberInput) {
	cmd.Flags().StringVar(&input.NoKTP, "no-ktp", "", "identity number")
	cmd.Flags().StringVar(&input.Nama, "nama", "", "member name")
	cmd.Flags().StringVar(&input.Alamat, "alamat", "", "address")
	cmd.Flags().StringVar(&input.TglLahir, "tgl-lahir", "", "birth date (YYYY-MM-DD)")
}

func newMemberAddCmd() *cobra.Command {
	var input usecase.MemberInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new member",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := newClient()
			if err != nil {
				return err
			}

			record, err := api.CreateMember(cmd.Context(), &input)
			if err != nil {
				return err
			}

			fmt.Printf("Member berhasil ditambahkan (id %d)\n", record.ID)

			return nil
		},
	}

	memberFlags(cmd, &input)
	_ = cmd.MarkFlagRequired("no-ktp")
	_ = cmd.MarkFlagRequired("nama")
	_ = cmd.MarkFlagRequired("alamat")
	_ = cmd.MarkFlagRequired("tgl-lahir")

	return cmd
}

func newMemberUpdateCmd() *cobra.Command {
	var input usecase.MemberInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a member",
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

			if _, err := api.UpdateMember(cmd.Context(), id, &input); err != nil {
				return err
			}

			fmt.Println("Member berhasil diperbarui")

			return nil
		},
	}

	memberFlags(cmd, &input)

	return cmd
}

func newMemberDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a member",
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

			if err := api.DeleteMember(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println("Member berhasil dihapus")

			return nil
		},
	}
}

func newMemberKartuCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "kartu <id>",
		Short: "Download a member's card QR code as PNG",
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

			png, err := api.MemberCard(cmd.Context(), id)
			if err != nil {
				return err
			}

			if outFile == "" {
				outFile = fmt.Sprintf("member-%d-kartu.png", id)
			}
			if err := os.WriteFile(outFile, png, 0o644); err != nil {
				return err
			}

			fmt.Println("Kartu tersimpan di", outFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file")

	return cmd
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}

	return uint(id), nil
}

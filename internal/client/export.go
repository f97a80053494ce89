package client

import (
	"encoding/csv"
	"io"
	"strconv"

	"perpus/internal/usecase"

	"github.com/pkg/errors"
)

// ExportLoansCSV writes the given loan list as a CSV artifact, resolving
// member and book names from the already-loaded lists. Read-only: it
// never talks to the server.
func ExportLoansCSV(w io.Writer, loans []usecase.LoanRecord, members []usecase.MemberRecord, books []usecase.BookRecord) error {
	memberNames := make(map[uint]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.Nama
	}
	bookTitles := make(map[uint]string, len(books))
	for _, b := range books {
		bookTitles[b.ID] = b.Judul
	}

	cw := csv.NewWriter(w)

	header := []string{"id", "member", "buku", "tgl_pinjam", "tgl_pengembalian", "status"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, loan := range loans {
		status := "dipinjam"
		if loan.StatusPengembalian {
			status = "dikembalikan"
		}

		row := []string{
			strconv.FormatUint(uint64(loan.ID), 10),
			memberNames[loan.IDMember],
			bookTitles[loan.IDBuku],
			loan.TglPinjam,
			loan.TglPengembalian,
			status,
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "failed to flush csv")
}

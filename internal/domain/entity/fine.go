package entity

import "time"

// FineKind classifies why a fine was charged.
type FineKind string

const (
	// FineKindTerlambat is charged for a late return.
	FineKindTerlambat FineKind = "terlambat"
	// FineKindKerusakan is charged for a damaged book. A damaged book is
	// taken out of circulation, so its stock is not restored on return.
	FineKindKerusakan FineKind = "kerusakan"
	// FineKindLainnya covers anything else.
	FineKindLainnya FineKind = "lainnya"
)

// Valid reports whether the kind is one of the known categories.
func (k FineKind) Valid() bool {
	switch k {
	case FineKindTerlambat, FineKindKerusakan, FineKindLainnya:
		return true
	}

	return false
}

// Fine is a monetary penalty created as a side effect of a loan's return
// workflow. Fines are read-only once created.
type Fine struct {
	ID          uint
	IDMember    uint
	IDBuku      uint
	JumlahDenda int64 // Amount in rupiah, >= 0.
	JenisDenda  FineKind
	Deskripsi   string
	CreatedAt   time.Time
}

package usecase

import "context"

// MemberInput defines the data accepted when creating or updating a member.
// Dates travel as date-only strings, matching the admin UI's date inputs.
type MemberInput struct {
	NoKTP    string `json:"no_ktp" validate:"required"`
	Nama     string `json:"nama" validate:"required"`
	Alamat   string `json:"alamat" validate:"required"`
	TglLahir string `json:"tgl_lahir" validate:"required,datetime=2006-01-02"`
}

// MemberRecord is the wire representation of a member.
type MemberRecord struct {
	ID       uint   `json:"id"`
	NoKTP    string `json:"no_ktp"`
	Nama     string `json:"nama"`
	Alamat   string `json:"alamat"`
	TglLahir string `json:"tgl_lahir"`
}

// MemberUsecase defines member management operations.
type MemberUsecase interface {
	List(ctx context.Context) ([]MemberRecord, error)
	Create(ctx context.Context, input *MemberInput) (*MemberRecord, error)
	Update(ctx context.Context, id uint, input *MemberInput) (*MemberRecord, error)
	Delete(ctx context.Context, id uint) error

	// Card renders the QR code for the member's card as a PNG.
	Card(ctx context.Context, id uint) ([]byte, error)
}

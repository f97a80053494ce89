package service

import "perpus/internal/domain/entity"

// CardService defines the interface for member card generation.
type CardService interface {
	// GenerateMemberQR renders the QR code printed on a member's card as a PNG.
	GenerateMemberQR(member *entity.Member) ([]byte, error)

	// ParseMemberQR parses scanned QR data and returns the member ID.
	ParseMemberQR(qrData string) (uint, error)
}

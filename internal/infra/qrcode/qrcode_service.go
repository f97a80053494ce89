package qrcode

import (
	"encoding/json"
	"fmt"

	"perpus/internal/domain/entity"
	"perpus/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type cardService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CardData represents the payload encoded on a member card's QR code
type CardData struct {
	MemberID uint   `json:"member_id"`
	NoKTP    string `json:"no_ktp"`
	Type     string `json:"type"`
}

// NewCardService creates a new member card service instance
func NewCardService(size int, errorCorrectionLevel string) service.CardService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &cardService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMemberQR renders the QR code printed on a member's card as a PNG
func (s *cardService) GenerateMemberQR(member *entity.Member) ([]byte, error) {
	// Create QR code data
	data := CardData{
		MemberID: member.ID,
		NoKTP:    member.NoKTP,
		Type:     "member_card",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseMemberQR parses scanned QR data and returns the member ID
func (s *cardService) ParseMemberQR(qrData string) (uint, error) {
	var data CardData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "member_card" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.MemberID == 0 {
		return 0, fmt.Errorf("missing member ID in QR code")
	}

	return data.MemberID, nil
}

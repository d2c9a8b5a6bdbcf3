// Package qrcode renders and parses the ticket QR codes attached to orders.
package qrcode

import (
	"encoding/json"
	"fmt"

	"evently/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TicketQRData represents the QR code data structure
type TicketQRData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// ticketQRType distinguishes ticket codes from any other QR payload a venue
// scanner might encounter.
const ticketQRType = "ticket"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTicketQR generates a PNG QR code embedding the order id.
func (s *qrcodeService) GenerateTicketQR(orderID uuid.UUID) ([]byte, error) {
	data := TicketQRData{
		OrderID: orderID.String(),
		Type:    ticketQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseTicketQR parses QR code data and returns the order ID
func (s *qrcodeService) ParseTicketQR(qrData string) (uuid.UUID, error) {
	var data TicketQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != ticketQRType {
		return uuid.Nil, fmt.Errorf("unexpected QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid order ID in QR code: %w", err)
	}

	return orderID, nil
}

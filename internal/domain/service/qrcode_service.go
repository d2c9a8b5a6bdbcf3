package service

import "github.com/google/uuid"

// QRCodeService generates and parses ticket QR codes for orders.
type QRCodeService interface {
	// GenerateTicketQR renders a PNG QR code embedding the order id,
	// presented by the buyer at the venue.
	GenerateTicketQR(orderID uuid.UUID) ([]byte, error)

	// ParseTicketQR extracts the order id from scanned QR data.
	ParseTicketQR(qrData string) (uuid.UUID, error)
}

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
)

// signatureTolerance bounds how old a webhook timestamp may be, limiting
// replay of captured deliveries.
const signatureTolerance = 5 * time.Minute

// webhookVerifier checks the provider's signature header and parses the
// payload. The header carries the signing timestamp and one or more
// HMAC-SHA256 signatures over "<timestamp>.<payload>":
//
//	t=1712000000,v1=5257a869e7ecebeda32affa62cdca3fa51cad7e77a0e56ff536d0ce8e108d8bd
type webhookVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewWebhookVerifier creates the payment webhook verifier from configuration.
func NewWebhookVerifier(cfg *config.Config) (service.PaymentWebhookVerifier, error) {
	if cfg.Payment == nil || strings.TrimSpace(cfg.Payment.WebhookSecret) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("payment webhook secret is required")
	}

	return &webhookVerifier{
		secret: []byte(cfg.Payment.WebhookSecret),
		now:    time.Now,
	}, nil
}

// webhookEnvelope is the provider's event wire format.
type webhookEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID          string            `json:"id"`
			AmountTotal int64             `json:"amount_total"`
			Metadata    map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// VerifyEvent validates the signature header against the raw payload and
// parses the event. Every failure maps to the same verification error so the
// response does not reveal which check broke.
func (v *webhookVerifier) VerifyEvent(payload []byte, signatureHeader string) (*service.PaymentEvent, error) {
	timestamp, signatures, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage(err.Error())
	}

	age := v.now().Sub(time.Unix(timestamp, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("signature timestamp outside tolerance")
	}

	expected := computeSignature(v.secret, timestamp, payload)
	if !anySignatureMatches(signatures, expected) {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("no matching signature")
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("payload is not valid JSON")
	}

	return &service.PaymentEvent{
		Type:        envelope.Type,
		SessionID:   envelope.Data.Object.ID,
		AmountTotal: envelope.Data.Object.AmountTotal,
		Metadata:    envelope.Data.Object.Metadata,
	}, nil
}

// parseSignatureHeader splits "t=<unix>,v1=<hex>[,v1=<hex>...]" into the
// timestamp and the candidate signatures.
func parseSignatureHeader(header string) (int64, []string, error) {
	var (
		timestamp    int64
		timestampSet bool
		signatures   []string
	)

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}

		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, errInvalidTimestamp
			}
			timestamp = parsed
			timestampSet = true
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if !timestampSet {
		return 0, nil, errMissingTimestamp
	}
	if len(signatures) == 0 {
		return 0, nil, errMissingSignature
	}

	return timestamp, signatures, nil
}

var (
	errInvalidTimestamp = strError("signature header timestamp is not an integer")
	errMissingTimestamp = strError("signature header has no timestamp")
	errMissingSignature = strError("signature header has no v1 signature")
)

type strError string

func (e strError) Error() string { return string(e) }

// computeSignature produces the hex HMAC-SHA256 of "<timestamp>.<payload>".
func computeSignature(secret []byte, timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return mac.Sum(nil)
}

func anySignatureMatches(candidates []string, expected []byte) bool {
	for _, candidate := range candidates {
		decoded, err := hex.DecodeString(candidate)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return true
		}
	}

	return false
}

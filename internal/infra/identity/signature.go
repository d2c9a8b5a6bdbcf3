package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
)

// signatureTolerance bounds how old a webhook timestamp may be.
const signatureTolerance = 5 * time.Minute

// secretPrefix marks the provider's webhook signing secrets; the part after
// it is the base64-encoded HMAC key.
const secretPrefix = "whsec_"

// webhookVerifier checks the identity provider's three signature headers.
// The signed content is "<id>.<timestamp>.<payload>" and the signature header
// holds space-separated "v1,<base64 hmac>" entries.
type webhookVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewWebhookVerifier creates the identity webhook verifier from configuration.
func NewWebhookVerifier(cfg *config.Config) (service.IdentityWebhookVerifier, error) {
	if cfg.Identity == nil || strings.TrimSpace(cfg.Identity.WebhookSecret) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("identity webhook secret is required")
	}

	secret, err := decodeSecret(cfg.Identity.WebhookSecret)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("identity webhook secret is not valid base64")
	}

	return &webhookVerifier{
		secret: secret,
		now:    time.Now,
	}, nil
}

func decodeSecret(secret string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
}

// webhookEnvelope is the provider's event wire format.
type webhookEnvelope struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		Username       string `json:"username"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// Verify validates the signature headers against the raw payload and parses
// the account event. Every failure maps to the same verification error.
func (v *webhookVerifier) Verify(payload []byte, headers service.IdentityWebhookHeaders) (*service.IdentityEvent, error) {
	if headers.ID == "" || headers.Timestamp == "" || headers.Signature == "" {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("missing webhook signature headers")
	}

	timestamp, err := strconv.ParseInt(headers.Timestamp, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("webhook timestamp is not an integer")
	}

	age := v.now().Sub(time.Unix(timestamp, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("webhook timestamp outside tolerance")
	}

	expected := v.computeSignature(headers.ID, headers.Timestamp, payload)
	if !anySignatureMatches(headers.Signature, expected) {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("no matching signature")
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, domainerrors.ErrWebhookVerificationFailed.WrapMessage("payload is not valid JSON")
	}

	event := &service.IdentityEvent{
		Type: envelope.Type,
		Data: service.IdentityEventData{
			ID:        envelope.Data.ID,
			Username:  envelope.Data.Username,
			FirstName: envelope.Data.FirstName,
			LastName:  envelope.Data.LastName,
			PhotoURL:  envelope.Data.ImageURL,
		},
	}
	if len(envelope.Data.EmailAddresses) > 0 {
		event.Data.Email = envelope.Data.EmailAddresses[0].EmailAddress
	}

	return event, nil
}

func (v *webhookVerifier) computeSignature(id, timestamp string, payload []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(id))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	return mac.Sum(nil)
}

// anySignatureMatches scans the space-separated "<version>,<base64>" entries
// for one v1 signature equal to the expected digest.
func anySignatureMatches(header string, expected []byte) bool {
	for _, entry := range strings.Fields(header) {
		version, value, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return true
		}
	}

	return false
}

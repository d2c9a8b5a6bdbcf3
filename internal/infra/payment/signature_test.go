package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evently/internal/domain/service"
)

const testWebhookSecret = "whsec_payment_test_secret"

func newTestVerifier(now time.Time) *webhookVerifier {
	return &webhookVerifier{
		secret: []byte(testWebhookSecret),
		now:    func() time.Time { return now },
	}
}

func signPayload(t *testing.T, payload []byte, timestamp int64) string {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)

	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestWebhookVerifier_VerifyEvent(t *testing.T) {
	now := time.Unix(1712000000, 0)
	payload := []byte(`{
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"amount_total": 2500,
				"metadata": {"eventId": "e1", "buyerId": "b1"}
			}
		}
	}`)

	verifier := newTestVerifier(now)

	event, err := verifier.VerifyEvent(payload, signPayload(t, payload, now.Unix()))
	require.NoError(t, err)

	assert.Equal(t, service.CheckoutEventCompleted, event.Type)
	assert.Equal(t, "cs_test_123", event.SessionID)
	assert.Equal(t, int64(2500), event.AmountTotal)
	assert.Equal(t, "e1", event.Metadata["eventId"])
	assert.Equal(t, "b1", event.Metadata["buyerId"])
}

func TestWebhookVerifier_VerifyEvent_MultipleSignatures(t *testing.T) {
	now := time.Unix(1712000000, 0)
	payload := []byte(`{"type": "checkout.session.expired", "data": {"object": {"id": "cs_1"}}}`)

	verifier := newTestVerifier(now)

	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.%s", now.Unix(), payload)
	valid := hex.EncodeToString(mac.Sum(nil))

	// An unmatched signature before the valid one must not fail verification.
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s",
		now.Unix(), hex.EncodeToString(make([]byte, sha256.Size)), valid)

	event, err := verifier.VerifyEvent(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "checkout.session.expired", event.Type)
}

func TestWebhookVerifier_VerifyEvent_TamperedPayload(t *testing.T) {
	now := time.Unix(1712000000, 0)
	payload := []byte(`{"type": "checkout.session.completed", "data": {"object": {"id": "cs_1", "amount_total": 2500}}}`)
	header := signPayload(t, payload, now.Unix())

	tampered := []byte(`{"type": "checkout.session.completed", "data": {"object": {"id": "cs_1", "amount_total": 1}}}`)

	verifier := newTestVerifier(now)

	_, err := verifier.VerifyEvent(tampered, header)
	assert.Error(t, err)
}

func TestWebhookVerifier_VerifyEvent_StaleTimestamp(t *testing.T) {
	now := time.Unix(1712000000, 0)
	payload := []byte(`{"type": "checkout.session.completed", "data": {"object": {"id": "cs_1"}}}`)

	stale := now.Add(-signatureTolerance - time.Second).Unix()
	header := signPayload(t, payload, stale)

	verifier := newTestVerifier(now)

	_, err := verifier.VerifyEvent(payload, header)
	assert.Error(t, err)
}

func TestWebhookVerifier_VerifyEvent_MalformedHeader(t *testing.T) {
	now := time.Unix(1712000000, 0)
	payload := []byte(`{"type": "checkout.session.completed"}`)
	verifier := newTestVerifier(now)

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"no timestamp", "v1=deadbeef"},
		{"no signature", fmt.Sprintf("t=%d", now.Unix())},
		{"non-numeric timestamp", "t=abc,v1=deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyEvent(payload, tt.header)
			assert.Error(t, err)
		})
	}
}

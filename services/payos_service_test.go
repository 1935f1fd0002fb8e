package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestCanonicalQueryString(t *testing.T) {
	data := map[string]any{
		"orderCode":   float64(123456),
		"amount":      float64(250000),
		"description": "HT260829-4F2A9C",
		"reference":   "FT123",
	}

	got := canonicalQueryString(data)
	want := "amount=250000&description=HT260829-4F2A9C&orderCode=123456&reference=FT123"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCanonicalQueryStringNilAndBool(t *testing.T) {
	data := map[string]any{
		"b": true,
		"n": nil,
		"a": "x",
	}
	got := canonicalQueryString(data)
	if got != "a=x&b=true&n=" {
		t.Fatalf("got %q", got)
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	client := &PayOSClient{checksumKey: "secret-key"}
	data := map[string]any{
		"orderCode": float64(42),
		"amount":    float64(1000),
	}

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write([]byte(canonicalQueryString(data)))
	signature := hex.EncodeToString(mac.Sum(nil))

	if !client.VerifyWebhookSignature(data, signature) {
		t.Fatal("valid signature rejected")
	}
	if client.VerifyWebhookSignature(data, signature+"00") {
		t.Fatal("tampered signature accepted")
	}

	data["amount"] = float64(2000)
	if client.VerifyWebhookSignature(data, signature) {
		t.Fatal("signature over different data accepted")
	}
}

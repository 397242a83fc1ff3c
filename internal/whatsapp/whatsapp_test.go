package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestLink(t *testing.T) {
	got := Link("+94771234567", "hello world")
	want := "https://wa.me/+94771234567?text=hello+world"
	if got != want {
		t.Errorf("Link = %q, want %q", got, want)
	}
}

func TestInquiryLink(t *testing.T) {
	got := InquiryLink("+94771234567")

	if !strings.HasPrefix(got, "https://wa.me/+94771234567?text=") {
		t.Fatalf("unexpected link prefix: %q", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if msg := u.Query().Get("text"); msg != InquiryMessage {
		t.Errorf("decoded message = %q, want %q", msg, InquiryMessage)
	}
}

func TestPurchaseLinkRoundTrips(t *testing.T) {
	bank := "Bank: Commercial Bank\nAccount: 1234567890"
	got := PurchaseLink("+94771234567", "2026 A/L", bank)

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	msg := u.Query().Get("text")
	if !strings.Contains(msg, "purchase 2026 A/L content") {
		t.Errorf("message missing class name: %q", msg)
	}
	if !strings.Contains(msg, bank) {
		t.Errorf("message missing bank details: %q", msg)
	}
}

package order

import (
	"strings"
	"testing"
)

func TestEncodeReceipt(t *testing.T) {
	got, err := EncodeReceipt(strings.NewReader("hello"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("encoded = %q", got)
	}
}

func TestEncodeReceiptDefaultsContentType(t *testing.T) {
	got, err := EncodeReceipt(strings.NewReader("x"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "data:application/octet-stream;base64,") {
		t.Errorf("encoded = %q", got)
	}
}

func TestEncodeReceiptEmpty(t *testing.T) {
	got, err := EncodeReceipt(strings.NewReader(""), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("empty input should encode to empty string, got %q", got)
	}

	got, err = EncodeReceipt(nil, "image/jpeg")
	if err != nil || got != "" {
		t.Errorf("nil reader should yield empty string, got %q (%v)", got, err)
	}
}

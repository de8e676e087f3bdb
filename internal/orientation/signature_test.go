package orientation

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeSignatureDataURLRoundTrip(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01, 0x02}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	got, err := DecodeSignatureDataURL(dataURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("decoded bytes do not match original payload")
	}
}

func TestDecodeSignatureDataURLSplitsOnFirstComma(t *testing.T) {
	// base64 of "a,b" - any comma in the payload must not confuse the split
	payload := []byte("a,b")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	got, err := DecodeSignatureDataURL(dataURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %q, want %q", got, payload)
	}
}

func TestDecodeSignatureDataURLRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{"missing comma", "data:image/png;base64" + base64.StdEncoding.EncodeToString([]byte("x"))},
		{"invalid base64", "data:image/png;base64,this is not base64!!"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSignatureDataURL(tt.dataURL)
			if err == nil {
				t.Fatal("expected an error")
			}

			var wfErr *WorkflowError
			if !errors.As(err, &wfErr) {
				t.Fatalf("expected *WorkflowError, got %T", err)
			}
			if wfErr.Code() != ErrCodeValidation {
				t.Errorf("code = %v, want ErrCodeValidation", wfErr.Code())
			}
		})
	}
}

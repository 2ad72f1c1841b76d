package utils

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestGenerateQRDataURI(t *testing.T) {
	uri, err := GenerateQRDataURI("http://localhost:3000/order/table-42")
	if err != nil {
		t.Fatalf("GenerateQRDataURI: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected %q prefix, got %q", prefix, uri[:min(len(uri), 30)])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected non-empty PNG payload")
	}
	// PNG magic bytes
	if string(raw[:4]) != "\x89PNG" {
		t.Errorf("payload does not look like a PNG: % x", raw[:4])
	}
}

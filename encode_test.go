package checklist

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBundleEncodeDecode(t *testing.T) {
	b := newTestBundle(t)
	b.SetRaw(InterestCoverage, "None") // keep a malformed entry in the snapshot

	var buf bytes.Buffer
	if err := EncodeBundle(&buf, b); err != nil {
		t.Fatalf("EncodeBundle() failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"ticker": "ACME"`) {
		t.Errorf("snapshot should be human-readable JSON, got:\n%s", buf.String())
	}

	decoded, err := DecodeBundle(&buf)
	if err != nil {
		t.Fatalf("DecodeBundle() failed: %v", err)
	}

	// The decoded bundle must evaluate to the same report.
	want, got := Evaluate(b), Evaluate(decoded)
	if len(want.Results) != len(got.Results) {
		t.Fatalf("result counts differ after roundtrip: %d vs %d", len(want.Results), len(got.Results))
	}
	for i := range want.Results {
		if want.Results[i] != got.Results[i] {
			t.Errorf("result[%d] changed after roundtrip:\n got %+v\nwant %+v", i, got.Results[i], want.Results[i])
		}
	}
	if decoded.Name() != "Acme Corp" || decoded.Currency() != "USD" {
		t.Errorf("identity lost: name=%q currency=%q", decoded.Name(), decoded.Currency())
	}
	if decoded.Fetched() != NewDate(2025, time.June, 30) {
		t.Errorf("fetched date lost: %s", decoded.Fetched())
	}
}

func TestDecodeBundle_MissingTicker(t *testing.T) {
	_, err := DecodeBundle(strings.NewReader(`{"name":"nobody"}`))
	if err == nil {
		t.Fatal("DecodeBundle() should reject a snapshot without ticker")
	}
}

func TestSaveLoadBundle(t *testing.T) {
	dir := t.TempDir()
	b := newTestBundle(t)

	if err := SaveBundle(dir, b); err != nil {
		t.Fatalf("SaveBundle() failed: %v", err)
	}
	loaded, err := LoadBundle(dir, "ACME")
	if err != nil {
		t.Fatalf("LoadBundle() failed: %v", err)
	}
	if loaded.Ticker() != "ACME" {
		t.Errorf("loaded ticker = %q, want ACME", loaded.Ticker())
	}

	tickers, err := ListBundles(dir)
	if err != nil {
		t.Fatalf("ListBundles() failed: %v", err)
	}
	if len(tickers) != 1 || tickers[0] != "ACME" {
		t.Errorf("ListBundles() = %v, want [ACME]", tickers)
	}
}

package ipc

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestCorrectionRequestRoundTrips(t *testing.T) {
	req := CorrectionRequest{ID: "req-1", Text: "the korrect answer", Limit: 3}

	data, err := msgpack.Marshal(&req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got CorrectionRequest
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != req {
		t.Errorf("round trip = %+v, want %+v", got, req)
	}
}

func TestCorrectionResponseRoundTrips(t *testing.T) {
	resp := CorrectionResponse{
		ID:          "req-1",
		Corrections: []Correction{{Word: "korrect", Suggestion: "correct"}},
		Count:       1,
		TimeTaken:   42,
	}

	data, err := msgpack.Marshal(&resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got CorrectionResponse
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.ID != resp.ID || got.Count != resp.Count || len(got.Corrections) != 1 {
		t.Errorf("round trip = %+v, want %+v", got, resp)
	}
	if got.Corrections[0] != resp.Corrections[0] {
		t.Errorf("Corrections[0] = %+v, want %+v", got.Corrections[0], resp.Corrections[0])
	}
}

func TestErrorResponseRoundTrips(t *testing.T) {
	e := ErrorResponse{ID: "req-2", Error: "empty text", Code: 400}

	data, err := msgpack.Marshal(&e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got ErrorResponse
	if err := msgpack.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != e {
		t.Errorf("round trip = %+v, want %+v", got, e)
	}
}

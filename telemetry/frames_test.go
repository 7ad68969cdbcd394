package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type testFrame struct {
	Tick   int32   `msgpack:"tick"`
	Events []Event `msgpack:"events"`
}

func TestFrameRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.msgpack")
	rec, err := NewFrameRecorder(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []testFrame{
		{Tick: 1},
		{Tick: 2, Events: []Event{NewConsumptionEvent(2, 7, 1, 9, 3, 20)}},
		{Tick: 3, Events: []Event{NewVictoryEvent(3, 1, 240)}},
	}
	for _, f := range want {
		if err := rec.Record(f); err != nil {
			t.Fatal(err)
		}
	}
	if rec.Frames() != 3 {
		t.Errorf("frames = %d, want 3", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var got []testFrame
	err = ReadFrames(file, func(dec *msgpack.Decoder) error {
		var f testFrame
		if err := dec.Decode(&f); err != nil {
			return err
		}
		got = append(got, f)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(want) {
		t.Fatalf("decoded %d frames, want %d", len(got), len(want))
	}
	ev := got[1].Events[0]
	if ev.Type != EventConsumption || ev.EntityID != 7 || ev.TargetTeam != 3 || ev.Amount != 20 {
		t.Errorf("consumption event = %+v", ev)
	}
	if got[2].Events[0].Type != EventVictory || got[2].Events[0].Team != 1 {
		t.Errorf("victory event = %+v", got[2].Events[0])
	}
}

func TestFrameRecorderDisabled(t *testing.T) {
	rec, err := NewFrameRecorder("")
	if err != nil || rec != nil {
		t.Fatalf("NewFrameRecorder(\"\") = %v, %v; want nil, nil", rec, err)
	}
	if err := rec.Record(testFrame{}); err != nil {
		t.Errorf("nil Record: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

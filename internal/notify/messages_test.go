package notify

import "testing"

func TestNewReportGenerated(t *testing.T) {
	ev := NewReportGenerated(2024, 3, "output/training_report.png")
	if ev.Kind != KindReportGenerated {
		t.Fatalf("kind: got %q", ev.Kind)
	}
	if ev.Year != 2024 || ev.Groups != 3 || ev.Path != "output/training_report.png" {
		t.Fatalf("fields wrong: %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestReportEventJSONRoundTrip(t *testing.T) {
	ev := NewSetsImported(412, "./data/liftreport.db")
	body, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := ReportEventFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != KindSetsImported || got.Sets != 412 || got.Path != ev.Path {
		t.Fatalf("round trip wrong: %+v", got)
	}
}

func TestReportEventFromJSONInvalid(t *testing.T) {
	if _, err := ReportEventFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error")
	}
}

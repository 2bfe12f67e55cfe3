package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// The 32nd of January is the 1st of February.
	d := New(2017, time.January, 32)
	if got, want := d.String(), "2017-02-01"; got != want {
		t.Errorf("New(2017, January, 32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "2017-01-01", want: "2017-01-01"},
		{in: "2017-1-1", want: "2017-01-01"}, // permissive format
		{in: "2017-12-10", want: "2017-12-10"},
		{in: "not-a-date", err: true},
		{in: "2017-12-10T21:00:37", err: true}, // timestamps are not dates
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tt.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if d.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, d, tt.want)
		}
	}
}

func TestBeforeAfter(t *testing.T) {
	a := New(2017, time.January, 1)
	b := New(2017, time.January, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is broken for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is broken for %s and %s", a, b)
	}
}

func TestAdd(t *testing.T) {
	d := New(2017, time.December, 31).Add(1)
	if got, want := d.String(), "2018-01-01"; got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2017, time.June, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"2017-06-15"` {
		t.Errorf("Marshal = %s, want %q", data, `"2017-06-15"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

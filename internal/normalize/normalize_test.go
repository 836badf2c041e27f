package normalize

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func testOptions() Options {
	return Options{
		ApplicationURL:   "https://fallback.example.com/apply",
		FallbackDeadline: civil.Date{Year: 2026, Month: time.December, Day: 31},
		Source:           "bigfuture",
	}
}

func validRaw() map[string]any {
	return map[string]any{
		"title":               "Gates Millennium Scholars",
		"organization":        "Gates Foundation",
		"description":         "Full ride for outstanding students.",
		"amount":              float64(5000),
		"deadline":            "2027-01-15",
		"requirements":        []any{"GPA 3.0+", "Undergraduate"},
		"categories":          []any{"merit", "stem"},
		"application_url":     "https://example.com/apply",
		"is_currently_active": true,
	}
}

func TestNormalizeValidResult(t *testing.T) {
	rec, err := Normalize(validRaw(), "bigfuture_1", testOptions())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if rec.ExternalID != "bigfuture_1" {
		t.Errorf("ExternalID = %q, want bigfuture_1", rec.ExternalID)
	}
	if rec.Title != "Gates Millennium Scholars" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Organization != "Gates Foundation" {
		t.Errorf("Organization = %q", rec.Organization)
	}
	if rec.Amount == nil || *rec.Amount != 5000 {
		t.Errorf("Amount = %v, want 5000", rec.Amount)
	}
	want := civil.Date{Year: 2027, Month: time.January, Day: 15}
	if rec.Deadline == nil || *rec.Deadline != want {
		t.Errorf("Deadline = %v, want %v", rec.Deadline, want)
	}
	if rec.DeadlineAssumed {
		t.Error("DeadlineAssumed = true for a parseable deadline")
	}
	if !reflect.DeepEqual(rec.Requirements, []string{"GPA 3.0+", "Undergraduate"}) {
		t.Errorf("Requirements = %v", rec.Requirements)
	}
	if !reflect.DeepEqual(rec.Categories, []string{"merit", "stem"}) {
		t.Errorf("Categories = %v", rec.Categories)
	}
	if rec.ApplicationURL != "https://example.com/apply" {
		t.Errorf("ApplicationURL = %q", rec.ApplicationURL)
	}
	if rec.Source != "bigfuture" {
		t.Errorf("Source = %q, want bigfuture", rec.Source)
	}
}

func TestNormalizeActivityGate(t *testing.T) {
	tests := []struct {
		name string
		set  func(map[string]any)
	}{
		{name: "explicitly inactive", set: func(m map[string]any) { m["is_currently_active"] = false }},
		{name: "flag absent", set: func(m map[string]any) { delete(m, "is_currently_active") }},
		{name: "flag null", set: func(m map[string]any) { m["is_currently_active"] = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.set(raw)
			_, err := Normalize(raw, "x", testOptions())
			if !errors.Is(err, ErrNotAccepting) {
				t.Errorf("Normalize() error = %v, want ErrNotAccepting", err)
			}
		})
	}
}

func TestNormalizeIncompleteData(t *testing.T) {
	for _, field := range []string{"title", "organization"} {
		t.Run("missing "+field, func(t *testing.T) {
			raw := validRaw()
			delete(raw, field)
			_, err := Normalize(raw, "x", testOptions())
			if !errors.Is(err, ErrIncompleteData) {
				t.Errorf("Normalize() error = %v, want ErrIncompleteData", err)
			}
		})
		t.Run("blank "+field, func(t *testing.T) {
			raw := validRaw()
			raw[field] = "   "
			_, err := Normalize(raw, "x", testOptions())
			if !errors.Is(err, ErrIncompleteData) {
				t.Errorf("Normalize() error = %v, want ErrIncompleteData", err)
			}
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	t.Run("null amount means unknown", func(t *testing.T) {
		raw := validRaw()
		raw["amount"] = nil
		rec, err := Normalize(raw, "x", testOptions())
		if err != nil {
			t.Fatalf("Normalize() error: %v", err)
		}
		if rec.Amount != nil {
			t.Errorf("Amount = %v, want nil", rec.Amount)
		}
	})

	t.Run("non-numeric amount is invalid", func(t *testing.T) {
		raw := validRaw()
		raw["amount"] = "five thousand"
		_, err := Normalize(raw, "x", testOptions())
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("Normalize() error = %v, want ErrInvalidField", err)
		}
	})

	t.Run("negative amount is invalid", func(t *testing.T) {
		raw := validRaw()
		raw["amount"] = float64(-100)
		_, err := Normalize(raw, "x", testOptions())
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("Normalize() error = %v, want ErrInvalidField", err)
		}
	})
}

func TestNormalizeDeadline(t *testing.T) {
	opts := testOptions()

	t.Run("absent deadline stays absent", func(t *testing.T) {
		raw := validRaw()
		delete(raw, "deadline")
		rec, err := Normalize(raw, "x", opts)
		if err != nil {
			t.Fatalf("Normalize() error: %v", err)
		}
		if rec.Deadline != nil {
			t.Errorf("Deadline = %v, want nil", rec.Deadline)
		}
		if rec.DeadlineAssumed {
			t.Error("DeadlineAssumed = true for an absent deadline")
		}
	})

	t.Run("unparseable deadline gets flagged fallback", func(t *testing.T) {
		raw := validRaw()
		raw["deadline"] = "next spring"
		rec, err := Normalize(raw, "x", opts)
		if err != nil {
			t.Fatalf("Normalize() error: %v", err)
		}
		if rec.Deadline == nil || *rec.Deadline != opts.FallbackDeadline {
			t.Errorf("Deadline = %v, want fallback %v", rec.Deadline, opts.FallbackDeadline)
		}
		if !rec.DeadlineAssumed {
			t.Error("DeadlineAssumed = false for a substituted deadline")
		}
	})

	t.Run("empty string deadline stays absent", func(t *testing.T) {
		raw := validRaw()
		raw["deadline"] = ""
		rec, err := Normalize(raw, "x", opts)
		if err != nil {
			t.Fatalf("Normalize() error: %v", err)
		}
		if rec.Deadline != nil || rec.DeadlineAssumed {
			t.Errorf("Deadline = %v, DeadlineAssumed = %v; want nil, false", rec.Deadline, rec.DeadlineAssumed)
		}
	})

	t.Run("non-string deadline gets flagged fallback", func(t *testing.T) {
		raw := validRaw()
		raw["deadline"] = float64(20271231)
		rec, err := Normalize(raw, "x", opts)
		if err != nil {
			t.Fatalf("Normalize() error: %v", err)
		}
		if !rec.DeadlineAssumed {
			t.Error("DeadlineAssumed = false for a non-string deadline")
		}
	})
}

func TestNormalizeDefaults(t *testing.T) {
	raw := validRaw()
	delete(raw, "requirements")
	delete(raw, "categories")
	delete(raw, "application_url")
	delete(raw, "description")

	rec, err := Normalize(raw, "x", testOptions())
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if len(rec.Requirements) != 0 || rec.Requirements == nil {
		t.Errorf("Requirements = %v, want empty list", rec.Requirements)
	}
	if len(rec.Categories) != 0 || rec.Categories == nil {
		t.Errorf("Categories = %v, want empty list", rec.Categories)
	}
	if rec.ApplicationURL != "https://fallback.example.com/apply" {
		t.Errorf("ApplicationURL = %q, want configured fallback", rec.ApplicationURL)
	}
	if rec.Description != "" {
		t.Errorf("Description = %q, want empty", rec.Description)
	}
}

func TestNormalizeInvalidListField(t *testing.T) {
	raw := validRaw()
	raw["requirements"] = "GPA 3.0+"
	_, err := Normalize(raw, "x", testOptions())
	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("Normalize() error = %v, want ErrInvalidField", err)
	}

	raw = validRaw()
	raw["categories"] = []any{"merit", float64(7)}
	_, err = Normalize(raw, "x", testOptions())
	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("Normalize() error = %v, want ErrInvalidField", err)
	}
}

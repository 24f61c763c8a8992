package request

import (
	"errors"
	"testing"
	"time"
)

func TestResolvePriceRequest_ResolveServiceDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := ResolvePriceRequest{ClinicID: " C1 ", Code: " 80053 ", ServiceDate: "2026-03-10"}
		d, err := r.ResolveServiceDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date: %v", d)
		}
		if r.ResolveClinicID() != "C1" || r.ResolveCode() != "80053" {
			t.Fatalf("expected trimmed fields")
		}
	})

	t.Run("wrong layout", func(t *testing.T) {
		r := ResolvePriceRequest{ServiceDate: "10/03/2026"}
		if _, err := r.ResolveServiceDate(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestSetClinicPriceRequest_ResolvePrice(t *testing.T) {
	t.Run("explicit zero survives", func(t *testing.T) {
		zero := 0.0
		r := SetClinicPriceRequest{Price: &zero}
		price, err := r.ResolvePrice()
		if err != nil || price != 0 {
			t.Fatalf("expected 0, got %v err %v", price, err)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		r := SetClinicPriceRequest{}
		if _, err := r.ResolvePrice(); !errors.Is(err, ErrMissingPrice) {
			t.Fatalf("expected ErrMissingPrice, got %v", err)
		}
	})
}

func TestSetClinicPriceRequest_ResolveEffectiveFrom(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		r := SetClinicPriceRequest{EffectiveFrom: "2026-03-10"}
		d, err := r.ResolveEffectiveFrom()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date: %v", d)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		r := SetClinicPriceRequest{}
		d, err := r.ResolveEffectiveFrom()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		now := time.Now().UTC()
		if d.Year() != now.Year() || d.Month() != now.Month() || d.Day() != now.Day() {
			t.Fatalf("expected today, got %v", d)
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("expected day-truncated time, got %v", d)
		}
	})
}

package request

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrMissingPrice = errors.New("missing price")
)

// ResolvePriceRequest asks for the unit price of one billable code for a
// clinic on a service date. Dates travel as "2006-01-02".
type ResolvePriceRequest struct {
	ClinicID    string `json:"clinic_id" binding:"required"`
	Code        string `json:"code" binding:"required"`
	ServiceDate string `json:"service_date" binding:"required"`
}

func (r ResolvePriceRequest) ResolveClinicID() string {
	return strings.TrimSpace(r.ClinicID)
}

func (r ResolvePriceRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

func (r ResolvePriceRequest) ResolveServiceDate() (time.Time, error) {
	return parseDate(r.ServiceDate)
}

// ResolvePriceBatchRequest is the import-workflow payload: one clinic, one
// service date, many codes.
type ResolvePriceBatchRequest struct {
	ClinicID    string   `json:"clinic_id" binding:"required"`
	Codes       []string `json:"codes" binding:"required"`
	ServiceDate string   `json:"service_date" binding:"required"`
}

func (r ResolvePriceBatchRequest) ResolveClinicID() string {
	return strings.TrimSpace(r.ClinicID)
}

func (r ResolvePriceBatchRequest) ResolveServiceDate() (time.Time, error) {
	return parseDate(r.ServiceDate)
}

// SetClinicPriceRequest opens a new clinic-scoped price record. Price is a
// pointer so an explicit 0 survives binding (0 is a legal, flagged price).
type SetClinicPriceRequest struct {
	ClinicID      string   `json:"clinic_id" binding:"required"`
	Code          string   `json:"code" binding:"required"`
	Price         *float64 `json:"price" binding:"required"`
	EffectiveFrom string   `json:"effective_from"`
}

func (r SetClinicPriceRequest) ResolveClinicID() string {
	return strings.TrimSpace(r.ClinicID)
}

func (r SetClinicPriceRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

func (r SetClinicPriceRequest) ResolvePrice() (float64, error) {
	if r.Price == nil {
		return 0, ErrMissingPrice
	}
	return *r.Price, nil
}

// ResolveEffectiveFrom defaults to today (UTC) when omitted: the common UI
// flow is "change the price starting now".
func (r SetClinicPriceRequest) ResolveEffectiveFrom() (time.Time, error) {
	return resolveEffectiveFrom(r.EffectiveFrom)
}

// SetDefaultPriceRequest opens a new organization-default price record.
type SetDefaultPriceRequest struct {
	Code          string   `json:"code" binding:"required"`
	Price         *float64 `json:"price" binding:"required"`
	EffectiveFrom string   `json:"effective_from"`
}

func (r SetDefaultPriceRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

func (r SetDefaultPriceRequest) ResolvePrice() (float64, error) {
	if r.Price == nil {
		return 0, ErrMissingPrice
	}
	return *r.Price, nil
}

func (r SetDefaultPriceRequest) ResolveEffectiveFrom() (time.Time, error) {
	return resolveEffectiveFrom(r.EffectiveFrom)
}

func resolveEffectiveFrom(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return parseDate(s)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

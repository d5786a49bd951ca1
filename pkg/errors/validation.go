package errors

import (
	"strings"
)

// MaxBatchSize is the largest number of VINs the upstream batch decode
// endpoint accepts in a single call. Larger batches are rejected locally
// before any request is issued.
const MaxBatchSize = 50

// MinModelYear is the earliest model year the VIN decode endpoints
// understand; the 17-character VIN standard took effect in 1981.
const MinModelYear = 1981

// ValidateVIN validates a complete or partial VIN.
//
// The validation rules are intentionally minimal; the library does no
// local decoding or check-digit verification, that all happens
// server-side:
//   - Not empty
//   - 6 to 17 characters (partial VINs use '*' for missing positions)
//   - No whitespace or control characters
func ValidateVIN(vin string) error {
	if vin == "" {
		return New(ErrCodeInvalidVIN, "vin is required")
	}
	if len(vin) < 6 || len(vin) > 17 {
		return New(ErrCodeInvalidVIN, "vin must be 6 to 17 characters: %q", vin)
	}
	for _, r := range vin {
		if r <= ' ' || r == 0x7f {
			return New(ErrCodeInvalidVIN, "vin contains invalid characters: %q", vin)
		}
	}
	return nil
}

// ValidateWMI validates a World Manufacturer Identifier code.
// Large-volume manufacturers have a 3-character WMI (VIN positions 1-3);
// smaller manufacturers have a 6-character WMI (positions 1-3 and 12-14).
func ValidateWMI(wmi string) error {
	if wmi == "" {
		return New(ErrCodeInvalidWMI, "wmi is required")
	}
	if len(wmi) != 3 && len(wmi) != 6 {
		return New(ErrCodeInvalidWMI, "wmi must be 3 or 6 characters: %q", wmi)
	}
	return nil
}

// ValidateModelYear validates an optional model year for VIN decoding.
// Zero means "not provided" and is accepted.
func ValidateModelYear(year int) error {
	if year != 0 && year < MinModelYear {
		return New(ErrCodeInvalidYear, "model year must be %d or later: %d", MinModelYear, year)
	}
	return nil
}

// ValidateBatchSize validates the number of VINs submitted for batch
// decoding against the upstream per-call maximum. Over-sized batches
// must never be truncated silently.
func ValidateBatchSize(n int) error {
	if n == 0 {
		return New(ErrCodeInvalidInput, "pass at least one VIN")
	}
	if n > MaxBatchSize {
		return New(ErrCodeBatchTooLarge, "batch of %d VINs exceeds the maximum of %d per call", n, MaxBatchSize)
	}
	return nil
}

// ValidateCFRPart validates the Code of Federal Regulations part for
// the parts endpoint. vPIC only serves documents filed under 49 CFR
// Part 565 (VIN requirements) and Part 566 (manufacturer identification).
func ValidateCFRPart(part string) error {
	switch part {
	case "565", "566":
		return nil
	case "":
		return New(ErrCodeInvalidInput, "cfr part is required")
	default:
		return New(ErrCodeInvalidInput, "cfr part must be 565 or 566: %q", part)
	}
}

// ValidateUnits validates the measurement system for Canadian vehicle
// specifications. Empty means "not provided"; callers default to Metric.
func ValidateUnits(units string) error {
	switch units {
	case "", "Metric", "US":
		return nil
	default:
		return New(ErrCodeInvalidInput, "units must be Metric or US: %q", units)
	}
}

// ValidateURL validates a base URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	return nil
}

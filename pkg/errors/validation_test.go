package errors

import "testing"

func TestValidateVIN(t *testing.T) {
	tests := []struct {
		name     string
		vin      string
		wantCode Code
	}{
		{"full vin", "1FTMW1T88MFA00001", ""},
		{"partial vin", "5UXWX7C5*BA", ""},
		{"six chars", "1FTMW1", ""},
		{"empty", "", ErrCodeInvalidVIN},
		{"too short", "1FTMW", ErrCodeInvalidVIN},
		{"too long", "1FTMW1T88MFA000011", ErrCodeInvalidVIN},
		{"whitespace", "1FTMW 1T88MFA0001", ErrCodeInvalidVIN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVIN(tt.vin)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateVIN(%q) code = %q, want %q", tt.vin, got, tt.wantCode)
			}
		})
	}
}

func TestValidateWMI(t *testing.T) {
	tests := []struct {
		wmi      string
		wantCode Code
	}{
		{"1FT", ""},
		{"1G9340", ""},
		{"", ErrCodeInvalidWMI},
		{"1F", ErrCodeInvalidWMI},
		{"1FTD", ErrCodeInvalidWMI},
	}
	for _, tt := range tests {
		err := ValidateWMI(tt.wmi)
		if got := GetCode(err); got != tt.wantCode {
			t.Errorf("ValidateWMI(%q) code = %q, want %q", tt.wmi, got, tt.wantCode)
		}
	}
}

func TestValidateModelYear(t *testing.T) {
	if err := ValidateModelYear(0); err != nil {
		t.Errorf("ValidateModelYear(0) = %v, want nil (not provided)", err)
	}
	if err := ValidateModelYear(1981); err != nil {
		t.Errorf("ValidateModelYear(1981) = %v, want nil", err)
	}
	if got := GetCode(ValidateModelYear(1980)); got != ErrCodeInvalidYear {
		t.Errorf("ValidateModelYear(1980) code = %q, want %q", got, ErrCodeInvalidYear)
	}
}

func TestValidateBatchSize(t *testing.T) {
	if err := ValidateBatchSize(1); err != nil {
		t.Errorf("ValidateBatchSize(1) = %v", err)
	}
	if err := ValidateBatchSize(MaxBatchSize); err != nil {
		t.Errorf("ValidateBatchSize(%d) = %v", MaxBatchSize, err)
	}
	if got := GetCode(ValidateBatchSize(0)); got != ErrCodeInvalidInput {
		t.Errorf("ValidateBatchSize(0) code = %q", got)
	}
	if got := GetCode(ValidateBatchSize(MaxBatchSize + 1)); got != ErrCodeBatchTooLarge {
		t.Errorf("ValidateBatchSize(51) code = %q, want %q", got, ErrCodeBatchTooLarge)
	}
}

func TestValidateCFRPart(t *testing.T) {
	if err := ValidateCFRPart("565"); err != nil {
		t.Errorf("ValidateCFRPart(565) = %v", err)
	}
	if err := ValidateCFRPart("566"); err != nil {
		t.Errorf("ValidateCFRPart(566) = %v", err)
	}
	if got := GetCode(ValidateCFRPart("")); got != ErrCodeInvalidInput {
		t.Errorf("ValidateCFRPart(empty) code = %q", got)
	}
	if got := GetCode(ValidateCFRPart("999")); got != ErrCodeInvalidInput {
		t.Errorf("ValidateCFRPart(999) code = %q", got)
	}
}

func TestValidateUnits(t *testing.T) {
	for _, units := range []string{"", "Metric", "US"} {
		if err := ValidateUnits(units); err != nil {
			t.Errorf("ValidateUnits(%q) = %v", units, err)
		}
	}
	if got := GetCode(ValidateUnits("Imperial")); got != ErrCodeInvalidInput {
		t.Errorf("ValidateUnits(Imperial) code = %q", got)
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://vpic.nhtsa.dot.gov/api/vehicles/"); err != nil {
		t.Errorf("ValidateURL(https) = %v", err)
	}
	if err := ValidateURL("http://localhost:8080/"); err != nil {
		t.Errorf("ValidateURL(http) = %v", err)
	}
	if GetCode(ValidateURL("")) != ErrCodeInvalidInput {
		t.Error("ValidateURL(empty) should fail")
	}
	if GetCode(ValidateURL("ftp://example.com")) != ErrCodeInvalidInput {
		t.Error("ValidateURL(ftp) should fail")
	}
}

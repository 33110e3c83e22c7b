package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", "2023-02-29", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+05:30", "2024-01-15T10:30:00.123456Z"}
	invalid := []string{"2024-01-15", "10:30", "2024-01-15 10:30:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidMobileNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "98765-43210", "98765 43210"}
	invalid := []string{"12345", "abcdefghij", "+91 98765 4321a", "1234567890123456", ""}
	for _, phone := range valid {
		if !IsValidMobileNumber(phone) {
			t.Errorf("IsValidMobileNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidMobileNumber(phone) {
			t.Errorf("IsValidMobileNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type checkIn struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	Kind       string  `json:"kind" validate:"oneof=Sick Vacation"`
}

func TestStruct(t *testing.T) {
	ok := checkIn{EmployeeID: "EMP-1", Latitude: 12.9, Longitude: 77.6, Kind: "Sick"}
	if err := Struct(ok); err != nil {
		t.Fatalf("Struct(valid) = %v, want nil", err)
	}

	bad := checkIn{Latitude: 91, Longitude: -181, Kind: "Holiday"}
	err := Struct(bad)
	errs, isValidation := err.(ValidationErrors)
	if !isValidation {
		t.Fatalf("Struct(invalid) returned %T, want ValidationErrors", err)
	}
	got := errs.ToMap()
	for _, field := range []string{"employee_id", "latitude", "longitude", "kind"} {
		if _, found := got[field]; !found {
			t.Errorf("Struct(invalid) missing error for %q; got %v", field, got)
		}
	}
	if got["latitude"] != "latitude must be between -90 and 90" {
		t.Errorf("latitude message = %q", got["latitude"])
	}
}

func TestMerge(t *testing.T) {
	a := ValidationErrors{{Field: "a", Message: "bad"}}
	b := ValidationErrors{{Field: "b", Message: "bad"}}

	merged := Merge(nil, a, nil, b)
	errs, ok := merged.(ValidationErrors)
	if !ok || len(errs) != 2 {
		t.Fatalf("Merge() = %v, want two validation errors", merged)
	}
	if Merge(nil, nil) != nil {
		t.Errorf("Merge(nil, nil) should be nil")
	}
}

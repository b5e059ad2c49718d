package validation

import "testing"

func TestIsValidTahunAkademik(t *testing.T) {
	valid := []string{"2023/2024", "1999/2000"}
	for _, v := range valid {
		if !IsValidTahunAkademik(v) {
			t.Errorf("IsValidTahunAkademik(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "2023", "2023-2024", "23/24", "2023/20245", "abcd/efgh"}
	for _, v := range invalid {
		if IsValidTahunAkademik(v) {
			t.Errorf("IsValidTahunAkademik(%q) = true, want false", v)
		}
	}
}

func TestIsValidNomorInduk(t *testing.T) {
	if !IsValidNomorInduk("2019010101") {
		t.Error("expected a 10 digit NPM to pass")
	}
	for _, v := range []string{"1234", "abc123", ""} {
		if IsValidNomorInduk(v) {
			t.Errorf("IsValidNomorInduk(%q) = true, want false", v)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("budi@kampus.ac.id") {
		t.Error("expected a campus address to pass")
	}
	for _, v := range []string{"budi", "budi@", "@kampus.ac.id"} {
		if IsValidEmail(v) {
			t.Errorf("IsValidEmail(%q) = true, want false", v)
		}
	}
}

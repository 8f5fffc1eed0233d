package validators

import (
	"strings"
	"testing"
)

func TestOnlyDigits(t *testing.T) {
	cases := map[string]string{
		"111.444.777-35": "11144477735",
		"(11) 98888-77":  "119888877",
		"":               "",
		"abc":            "",
	}

	for in, want := range cases {
		if got := OnlyDigits(in); got != want {
			t.Errorf("OnlyDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidCPF_KnownValid(t *testing.T) {
	if !IsValidCPF("11144477735") {
		t.Fatal("expected 11144477735 to be valid")
	}
}

func TestIsValidCPF_FormattedInput(t *testing.T) {
	if !IsValidCPF("111.444.777-35") {
		t.Fatal("expected formatted CPF to be valid after normalization")
	}
}

func TestIsValidCPF_WrongCheckDigit(t *testing.T) {
	if IsValidCPF("11144477736") {
		t.Fatal("expected CPF with altered last digit to be invalid")
	}
}

func TestIsValidCPF_RepeatedDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		if IsValidCPF(cpf) {
			t.Errorf("expected %s to be invalid", cpf)
		}
	}
}

func TestIsValidCPF_BadLength(t *testing.T) {
	cases := []string{"", "1114447773", "111444777355", "abc", "111.444.777"}
	for _, c := range cases {
		if IsValidCPF(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

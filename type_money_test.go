package gagyebu

import (
	"testing"
)

func TestMoney_arithmetic(t *testing.T) {
	a := M(10000, "KRW")
	b := M(500, "KRW")

	if got := a.Add(b); !got.Equal(M(10500, "KRW")) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(9500, "KRW")) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); !got.Equal(M(-10000, "KRW")) {
		t.Errorf("Neg = %v", got)
	}
	if got := M(d("70000"), "KRW").Mul(Q(10)); !got.Equal(M(700000, "KRW")) {
		t.Errorf("Mul = %v", got)
	}
}

func TestMoney_weakEmptyCurrency(t *testing.T) {
	// The "" currency adopts the other operand's currency.
	got := M(100, "").Add(M(1, "USD"))
	if got.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("adding mismatched currencies did not panic")
		}
	}()
	M(1, "KRW").Add(M(1, "USD"))
}

func TestMoney_Round(t *testing.T) {
	c := DefaultConfig()
	// KRW carries no fraction digits, USD two.
	if got := M(d("1234.567"), "KRW").Round(c); !got.Amount().Equal(d("1235")) {
		t.Errorf("Round KRW = %v", got.Amount())
	}
	if got := M(d("19.999"), "USD").Round(c); !got.Amount().Equal(d("20.00")) {
		t.Errorf("Round USD = %v", got.Amount())
	}
}

func TestConfig_DecimalsFor(t *testing.T) {
	c := DefaultConfig()
	testCases := []struct {
		currency string
		want     int32
	}{
		{"KRW", 0},
		{"JPY", 0},
		{"USD", 2},
	}
	for _, tc := range testCases {
		if got := c.DecimalsFor(tc.currency); got != tc.want {
			t.Errorf("DecimalsFor(%s) = %d, want %d", tc.currency, got, tc.want)
		}
	}

	c.Decimals = map[string]int32{"KRW": 2}
	if got := c.DecimalsFor("KRW"); got != 2 {
		t.Errorf("override DecimalsFor(KRW) = %d, want 2", got)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, ok := range []string{"KRW", "USD", "EUR", "JPY"} {
		if err := ValidateCurrency(ok); err != nil {
			t.Errorf("ValidateCurrency(%s) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "K", "KRWX", "XQZ"} {
		if err := ValidateCurrency(bad); err == nil {
			t.Errorf("ValidateCurrency(%q) accepted", bad)
		}
	}
}

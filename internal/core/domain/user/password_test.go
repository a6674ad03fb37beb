package user

import (
	"fmt"
	"testing"
)

func TestCheckPasswordComplexity(t *testing.T) {
	type testcase struct {
		password string
		valid    bool
	}
	cases := []testcase{
		{password: "Abcdef1!", valid: true},
		{password: "xY9#xY9#xY9#", valid: true},
		{password: "A1!aA1!a", valid: true},
		{password: "", valid: false},
		{password: "weak", valid: false},
		{password: "Abcde1!", valid: false},  // 7 chars
		{password: "ABCDEF1!", valid: false}, // no lowercase
		{password: "abcdef1!", valid: false}, // no uppercase
		{password: "Abcdefg!", valid: false}, // no digit
		{password: "Abcdefg1", valid: false}, // no symbol
		{password: "Abcdef1?", valid: false}, // symbol outside allowed set
		{password: "Abcdef1! ", valid: false},
	}
	for ix, c := range cases {
		t.Run(fmt.Sprint(ix), func(t *testing.T) {
			err := CheckPasswordComplexity(RawPassword(c.password))
			if c.valid && err != nil {
				t.Fatalf("password %q must be valid, got %v", c.password, err)
			}
			if !c.valid && err == nil {
				t.Fatalf("password %q must be invalid", c.password)
			}
		})
	}
}

package utils

import "testing"

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2025-06-15") {
		t.Fatalf("期望 2025-06-15 为合法日期")
	}
	for _, d := range []string{"", "15/06/2025", "2025-13-01", "2025-6-1"} {
		if ValidateDate(d) {
			t.Fatalf("期望 %q 为非法日期", d)
		}
	}
}

func TestUsernameFromEmail(t *testing.T) {
	if got := UsernameFromEmail("alice@example.com"); got != "alice" {
		t.Fatalf("期望 alice，实际为 %q", got)
	}
	if got := UsernameFromEmail("no-at"); got != "no-at" {
		t.Fatalf("期望原样返回，实际为 %q", got)
	}
}

package i18n

import "testing"

func restoreLocale(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { SetLocale(DefaultLocale) })
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"zh-CN", "zh"},
		{"zh_TW", "zh"},
		{"EN", "en"},
		{"en-US", "en"},
		{"  fr  ", "fr"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.tag); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.tag, got, c.want)
		}
	}
}

func TestLocaleSwitching(t *testing.T) {
	restoreLocale(t)

	if got := T("button.confirm"); got != "Confirm" {
		t.Fatalf("expected English default, got %q", got)
	}

	SetLocale("zh-CN")
	if Locale() != "zh" {
		t.Fatalf("expected normalized active locale, got %q", Locale())
	}
	if got := T("button.confirm"); got != "确认" {
		t.Fatalf("expected Chinese label, got %q", got)
	}
}

func TestUnknownLocaleFallsBackToDefault(t *testing.T) {
	restoreLocale(t)
	SetLocale("fr")
	if got := T("button.cancel"); got != "Cancel" {
		t.Fatalf("expected fallback to default table, got %q", got)
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	restoreLocale(t)
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestBlankTagKeepsActiveLocale(t *testing.T) {
	restoreLocale(t)
	SetLocale("zh")
	SetLocale("   ")
	if Locale() != "zh" {
		t.Fatalf("expected blank tags ignored, got %q", Locale())
	}
}

func TestTfFormats(t *testing.T) {
	restoreLocale(t)
	if got := Tf("panel.header", 12, 3); got != "12 candidates · 3 selected" {
		t.Fatalf("unexpected formatted header %q", got)
	}
}

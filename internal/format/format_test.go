package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"en": "Mar 5, 2024",
		"EN": "Mar 5, 2024",
		"ja": "2024/03/05",
		"de": "05.03.2024",
		"nl": "05-03-2024",
		"fr": "05/03/2024",
	}
	for lang, want := range cases {
		if got := Date(d, lang); got != want {
			t.Errorf("Date(%s) = %q, want %q", lang, got, want)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate("2024-03-05", "en"); got != "Mar 5, 2024" {
		t.Fatalf("iso date: %q", got)
	}
	if got := DisplayDate("2024-03-05T10:00:00Z", "fr"); got != "05/03/2024" {
		t.Fatalf("rfc3339: %q", got)
	}
	if got := DisplayDate("Spring 2024", "en"); got != "Spring 2024" {
		t.Fatalf("free text should pass through: %q", got)
	}
}

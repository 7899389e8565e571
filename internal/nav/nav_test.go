package nav

import "testing"

func TestBuildResolvesLabels(t *testing.T) {
	items := Build(func(key string) string { return "T:" + key })
	if len(items) != len(Sections) {
		t.Fatalf("expected %d items, got %d", len(Sections), len(items))
	}
	if items[0].Href != "#machines" || items[0].Label != "T:nav.machines" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[len(items)-1].Anchor != "testimonials" {
		t.Fatalf("unexpected last item: %+v", items[len(items)-1])
	}
}

func TestBuildWithoutTranslator(t *testing.T) {
	for _, it := range Build(nil) {
		if it.Label != it.LabelKey {
			t.Fatalf("label %q should equal key %q", it.Label, it.LabelKey)
		}
	}
}

func TestAnchorsOrder(t *testing.T) {
	want := []string{"machines", "about", "clientele", "knowMore", "news", "testimonials"}
	got := Anchors()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("anchor %d = %q, want %q", i, got[i], want[i])
		}
	}
}

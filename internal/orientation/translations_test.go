package orientation

import "testing"

func TestEveryLanguageHasCompleteGuidance(t *testing.T) {
	codes := Languages()
	if len(codes) == 0 {
		t.Fatal("no languages registered")
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			entry, ok := Lookup(code)
			if !ok {
				t.Fatalf("Lookup(%q) not found", code)
			}

			if entry.Code != code {
				t.Errorf("entry code = %q, want %q", entry.Code, code)
			}
			if entry.Title == "" {
				t.Error("title is empty")
			}
			if len(entry.Items) != 6 {
				t.Fatalf("got %d items, want 6", len(entry.Items))
			}
			for i, item := range entry.Items {
				if item == "" {
					t.Errorf("item %d is empty", i+1)
				}
			}
			for _, label := range []struct{ name, value string }{
				{"signature label", entry.SignatureLabel},
				{"agree label", entry.AgreeLabel},
				{"submit label", entry.SubmitLabel},
			} {
				if label.value == "" {
					t.Errorf("%s is empty", label.name)
				}
			}
		})
	}
}

func TestLanguagesAreTheExpectedSet(t *testing.T) {
	want := []string{"en", "id", "my", "th", "vi"}
	got := Languages()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEnglishTitle(t *testing.T) {
	entry, ok := Lookup("en")
	if !ok {
		t.Fatal("en not found")
	}
	if entry.Title != "Confirmation of Living Orientation" {
		t.Errorf("en title = %q", entry.Title)
	}
}

func TestJapaneseSourceText(t *testing.T) {
	src := JapaneseText()
	if src.Title != "生活オリエンテーションの確認書" {
		t.Errorf("source title = %q", src.Title)
	}
	if len(src.Items) != 6 {
		t.Fatalf("got %d source items, want 6", len(src.Items))
	}
	for i, item := range src.Items {
		runes := []rune(item)
		if len(runes) < 3 {
			t.Errorf("source item %d too short to carry a clause number: %q", i+1, item)
		}
	}
}

func TestLookupUnknownLanguage(t *testing.T) {
	if _, ok := Lookup("fr"); ok {
		t.Error("Lookup(fr) should not be found")
	}
	if _, ok := Lookup(""); ok {
		t.Error("Lookup of empty code should not be found")
	}
}

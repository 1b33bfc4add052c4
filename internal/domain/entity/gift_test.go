package entity

import "testing"

func TestBuyLinkEncodesTitle(t *testing.T) {
	got := BuyLink("Pierre Cardin Deri Cüzdan & Kemer Seti")
	want := "https://www.google.com/search?q=Pierre%20Cardin%20Deri%20C%C3%BCzdan%20%26%20Kemer%20Seti%20sat%C4%B1n%20al"
	if got != want {
		t.Fatalf("unexpected link\n got: %s\nwant: %s", got, want)
	}
	if ShoppingLink("x") != "https://www.google.com/search?q=x%20sat%C4%B1n%20al&tbm=shop" {
		t.Fatalf("unexpected shopping link %s", ShoppingLink("x"))
	}
}

func TestCandidateLookupPrefersSearchQuery(t *testing.T) {
	c := Candidate{Title: "Kindle"}
	if c.Lookup() != "Kindle" {
		t.Fatalf("expected title fallback")
	}
	c.SearchQuery = "Kindle Paperwhite 16GB"
	if c.Lookup() != "Kindle Paperwhite 16GB" {
		t.Fatalf("expected search query")
	}
}

package currency

import "testing"

func TestFormat(t *testing.T) {
	usd := Currency{Code: "USD", Symbol: "$", Rate: 1, IsActive: true}
	eur := Currency{Code: "EUR", Symbol: "€", Rate: 0.9, IsActive: true}

	if got := Format(12.34, usd); got != "$12.34" {
		t.Errorf("Format USD = %q", got)
	}
	if got := Format(10, eur); got != "€9.00" {
		t.Errorf("Format EUR = %q", got)
	}
	// zero rate must not zero out the price
	if got := Format(5, Currency{Symbol: "$"}); got != "$5.00" {
		t.Errorf("Format with zero rate = %q", got)
	}
}

func TestServiceDisplayFallback(t *testing.T) {
	repo := NewInMemoryRepository([]Currency{
		{Code: "USD", Symbol: "$", Rate: 1, IsActive: true},
		{Code: "GBP", Symbol: "£", Rate: 0.8, IsActive: false},
	})
	s := NewService(repo)

	if got := s.Display(20, "USD"); got != "$20.00" {
		t.Errorf("Display USD = %q", got)
	}
	// inactive currency falls back to the base amount
	if got := s.Display(20, "GBP"); got != "20.00" {
		t.Errorf("Display inactive = %q", got)
	}
	// unknown code falls back too
	if got := s.Display(20, "XXX"); got != "20.00" {
		t.Errorf("Display unknown = %q", got)
	}
}

package currency

// Service wraps the repository and owns display formatting.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive() ([]Currency, error) {
	return s.repo.ListActive()
}

// Display formats a base amount in the named currency. Unknown or inactive
// codes fall back to the raw base amount so a bad query string never breaks
// a price listing.
func (s *Service) Display(amount float64, code string) string {
	cur, err := s.repo.GetByCode(code)
	if err != nil || !cur.IsActive {
		return Format(amount, Currency{Rate: 1})
	}
	return Format(amount, cur)
}

package paymentmethod

// Service wraps the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive() ([]PaymentMethod, error) {
	return s.repo.ListActive()
}

// GetActive returns the method only if it exists and is active. Inactive
// methods are treated as not found so a stale client selection cannot be
// carried through checkout.
func (s *Service) GetActive(id int) (PaymentMethod, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return PaymentMethod{}, err
	}
	if !m.IsActive {
		return PaymentMethod{}, ErrNotFound
	}
	return m, nil
}

package product

// Service orchestrates catalog reads.
type Service struct {
	repo Repository
}

// ServiceInterface lets other packages depend on the product service
// without pulling in a concrete repository.
type ServiceInterface interface {
	List(categoryID int) ([]Product, error)
	GetByID(id int) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(categoryID int) ([]Product, error) {
	return s.repo.List(categoryID)
}

func (s *Service) GetByID(id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

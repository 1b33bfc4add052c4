package catalog

// Service serves the catalog snapshot loaded at startup. The catalog is
// immutable for the lifetime of the process.
type Service struct {
	products []Product
}

// NewService loads the catalog once from repo.
func NewService(repo Repository) (*Service, error) {
	products, err := repo.List()
	if err != nil {
		return nil, err
	}
	return &Service{products: products}, nil
}

func (s *Service) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) GetByID(id string) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

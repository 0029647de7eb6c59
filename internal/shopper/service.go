package shopper

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (Shopper, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(sh Shopper) (Shopper, error) {
	if _, err := s.repo.GetByEmail(sh.Email); err == nil {
		return Shopper{}, ErrEmailExists
	} else if err != ErrNotFound {
		return Shopper{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(sh.Password), bcrypt.DefaultCost)
	if err != nil {
		return Shopper{}, err
	}

	sh.Password = string(hashed)
	return s.repo.Create(sh)
}

func (s *Service) Authenticate(email, password string) (Shopper, error) {
	sh, err := s.repo.GetByEmail(email)
	if err != nil {
		return Shopper{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(sh.Password), []byte(password)) != nil {
		return Shopper{}, ErrInvalidCredentials
	}

	return sh, nil
}

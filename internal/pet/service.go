package pet

import (
	"context"
	"strings"

	"github.com/kittipatv/pet-storefront-backend/internal/petapi"
)

// Submitter is the slice of the outbound API the pet service depends on.
type Submitter interface {
	SubmitPetDetails(ctx context.Context, in petapi.SubmitRequest) (petapi.SubmitResponse, error)
	FetchRandomImage(ctx context.Context) (string, error)
}

// Service orchestrates catalog reads and the add-pet pipeline.
type Service struct {
	repo Repository
	api  Submitter
}

func NewService(repo Repository, api Submitter) *Service {
	return &Service{repo: repo, api: api}
}

func (s *Service) List() []Pet {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Pet, error) {
	return s.repo.GetByID(id)
}

// AddPet runs the submission pipeline: validate the raw form, send the
// normalized record to the remote endpoint, then persist it locally under the
// server-assigned id. A failure at any step leaves the catalog untouched so
// the caller can simply resubmit.
func (s *Service) AddPet(ctx context.Context, form Form, imageURL string) (Pet, error) {
	norm, ferrs := form.Validate()
	if len(ferrs) > 0 {
		return Pet{}, ferrs
	}

	resp, err := s.api.SubmitPetDetails(ctx, petapi.SubmitRequest{
		Name:  norm.Name,
		Breed: norm.Breed,
		Age:   norm.Age,
		Price: norm.Price,
	})
	if err != nil {
		return Pet{}, err
	}

	age := norm.Age
	return s.repo.Create(Pet{
		ID:       resp.ID,
		Name:     norm.Name,
		Breed:    norm.Breed,
		Age:      &age,
		Price:    norm.Price,
		ImageURL: strings.TrimSpace(imageURL),
	})
}

// RandomImage fetches a random pet image URL. The context should be the
// request context so a dropped connection cancels the in-flight fetch.
func (s *Service) RandomImage(ctx context.Context) (string, error) {
	return s.api.FetchRandomImage(ctx)
}

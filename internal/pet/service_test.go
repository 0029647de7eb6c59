package pet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kittipatv/pet-storefront-backend/internal/petapi"
)

type fakeAPI struct {
	submitCalls int
	lastSubmit  petapi.SubmitRequest
	submitResp  petapi.SubmitResponse
	submitErr   error

	imageCalls int
	imageURL   string
	imageErr   error
}

func (f *fakeAPI) SubmitPetDetails(ctx context.Context, in petapi.SubmitRequest) (petapi.SubmitResponse, error) {
	f.submitCalls++
	f.lastSubmit = in
	return f.submitResp, f.submitErr
}

func (f *fakeAPI) FetchRandomImage(ctx context.Context) (string, error) {
	f.imageCalls++
	return f.imageURL, f.imageErr
}

func TestAddPet_AssignsServerID(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	api := &fakeAPI{submitResp: petapi.SubmitResponse{ID: "981"}}
	service := NewService(repo, api)

	form := Form{Name: "Max", Breed: "Labrador", Age: "5", Price: "500"}
	created, err := service.AddPet(context.Background(), form, "file:///pets/max.jpg")
	if err != nil {
		t.Fatalf("AddPet failed: %v", err)
	}

	if created.ID != "981" {
		t.Fatalf("expected server-assigned id, got %q", created.ID)
	}
	if created.Age == nil || *created.Age != 5 {
		t.Fatalf("expected age 5 on submitted pet, got %v", created.Age)
	}
	if created.ImageURL != "file:///pets/max.jpg" {
		t.Fatalf("expected submitted image url, got %q", created.ImageURL)
	}

	if api.submitCalls != 1 {
		t.Fatalf("expected one submission, got %d", api.submitCalls)
	}
	if api.lastSubmit.Name != "Max" || api.lastSubmit.Age != 5 || !api.lastSubmit.Price.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected submitted payload: %+v", api.lastSubmit)
	}

	// the pet is now part of the catalog
	got, err := repo.GetByID("981")
	if err != nil {
		t.Fatalf("expected pet in catalog: %v", err)
	}
	if got.Name != "Max" {
		t.Fatalf("unexpected catalog pet: %+v", got)
	}
}

func TestAddPet_ValidationStopsPipeline(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	api := &fakeAPI{submitResp: petapi.SubmitResponse{ID: "1"}}
	service := NewService(repo, api)

	_, err := service.AddPet(context.Background(), Form{Name: "A"}, "")

	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(ferrs) != 4 {
		t.Fatalf("expected every failing field reported, got %v", ferrs)
	}
	if api.submitCalls != 0 {
		t.Fatalf("invalid forms must never reach the network, got %d calls", api.submitCalls)
	}
	if len(repo.List()) != 0 {
		t.Fatalf("catalog must stay untouched on validation failure")
	}
}

func TestAddPet_SubmissionFailureLeavesCatalogUntouched(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	api := &fakeAPI{submitErr: &petapi.Error{Kind: petapi.KindSubmission, Status: 503, Err: errors.New("service unavailable")}}
	service := NewService(repo, api)

	form := Form{Name: "Max", Breed: "Labrador", Age: "5", Price: "500"}
	_, err := service.AddPet(context.Background(), form, "")

	var apiErr *petapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected petapi.Error, got %v", err)
	}
	if apiErr.Kind != petapi.KindSubmission || apiErr.Status != 503 {
		t.Fatalf("remote status must be preserved, got %+v", apiErr)
	}
	if len(repo.List()) != 0 {
		t.Fatalf("catalog must stay untouched on submission failure")
	}
}

func TestRandomImage_Delegates(t *testing.T) {
	api := &fakeAPI{imageURL: "https://images.dog.ceo/breeds/husky/n02110185_1469.jpg"}
	service := NewService(NewInMemoryRepository(nil), api)

	url, err := service.RandomImage(context.Background())
	if err != nil {
		t.Fatalf("RandomImage failed: %v", err)
	}
	if url != api.imageURL {
		t.Fatalf("expected %q, got %q", api.imageURL, url)
	}
	if api.imageCalls != 1 {
		t.Fatalf("expected one fetch, got %d", api.imageCalls)
	}
}

package pet

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kittipatv/pet-storefront-backend/internal/petapi"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/pets", h.getPets)
	app.Get("/api/v1/pet/:id", h.getPet)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/pet", h.addPet)
	// not under /pet/ so the public :id route cannot shadow it
	app.Get("/api/v1/random-image", h.randomImage)
}

func (h *Handler) getPets(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getPet(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "pet not found"})
	}
	return c.JSON(p)
}

type addPetRequest struct {
	Form
	ImageURL string `json:"imageUrl"`
}

func (h *Handler) addPet(c *fiber.Ctx) error {
	payload := new(addPetRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}

	created, err := h.service.AddPet(c.Context(), payload.Form, payload.ImageURL)
	if err != nil {
		var ferrs FieldErrors
		if errors.As(err, &ferrs) {
			// every failing field at once, so the form can show them together
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ferrs})
		}
		var apiErr *petapi.Error
		if errors.As(err, &apiErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "pet submission service unavailable",
				"status":  apiErr.Status,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) randomImage(c *fiber.Ctx) error {
	url, err := h.service.RandomImage(c.Context())
	if err != nil {
		var apiErr *petapi.Error
		if errors.As(err, &apiErr) && apiErr.Kind == petapi.KindCancelled {
			// client went away; nobody reads this response
			return c.SendStatus(499)
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "image service unavailable"})
	}
	return c.JSON(fiber.Map{"imageUrl": url})
}

package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kittipatv/pet-storefront-backend/internal/pet"
	"github.com/kittipatv/pet-storefront-backend/internal/shopper"
)

// Handler exposes the session cart over HTTP. Each authenticated shopper gets
// their own Store from Sessions.
type Handler struct {
	sessions *Sessions
	pets     *pet.Service
}

func NewHandler(sessions *Sessions, pets *pet.Service) *Handler {
	return &Handler{sessions: sessions, pets: pets}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Delete("/api/v1/cart/:cartId", h.removeFromCart)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addRequest struct {
	PetID string `json:"petId"`
}

type cartResponse struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	shopperID, err := shopper.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	return c.JSON(buildResponse(h.sessions.For(shopperID)))
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	shopperID, err := shopper.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if payload.PetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "petId is required"})
	}

	p, err := h.pets.GetByID(payload.PetID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "pet not found"})
	}

	store := h.sessions.For(shopperID)
	store.AddItem(p)
	return c.JSON(buildResponse(store))
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	shopperID, err := shopper.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	cartID, err := strconv.ParseInt(c.Params("cartId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid cartId"})
	}

	// removing an absent id is a no-op, so this always succeeds
	store := h.sessions.For(shopperID)
	store.RemoveItem(cartID)
	return c.JSON(buildResponse(store))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	shopperID, err := shopper.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	store := h.sessions.For(shopperID)
	store.ClearCart()
	return c.JSON(buildResponse(store))
}

func buildResponse(store *Store) cartResponse {
	return cartResponse{
		Items: store.Items(),
		Total: store.GetTotal(),
	}
}

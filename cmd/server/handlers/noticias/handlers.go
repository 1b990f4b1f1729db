package noticias

import (
	"context"
	"errors"

	"alerta-vecinal/cmd/server/handlers/handlerutil"
	"alerta-vecinal/cmd/server/handlers/httperr"
	"alerta-vecinal/internal/services/news"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Wire messages kept verbatim from the legacy API.
const (
	MsgMissingFields = "Faltan campos obligatorios"
	MsgCreateFailed  = "Error al crear la noticia"
	MsgListFailed    = "Error al obtener las noticias"
)

// Service defines the interface for the news service
type Service interface {
	Create(ctx context.Context, req news.CreateNewsRequest) (*news.NewsResponse, error)
	List(ctx context.Context) (*news.ListNewsResponse, error)
}

// Handlers contains the news HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new news handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// CreateResponse is the legacy success envelope for news creation
type CreateResponse struct {
	OK   bool           `json:"ok"`
	Data *news.NewsItem `json:"data"`
}

// ListResponse is the legacy success envelope for news listing
type ListResponse struct {
	OK   bool             `json:"ok"`
	Data []*news.NewsItem `json:"data"`
}

// Create handles news creation
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req news.CreateNewsRequest
	badReq := httperr.E{Status: 400, Message: MsgMissingFields}
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Create", badReq); err != nil {
		return err
	}

	resp, err := h.service.Create(c.Context(), req)
	if err != nil {
		if errors.Is(err, news.ErrMissingFields) {
			return httperr.API(400, MsgMissingFields)
		}
		return httperr.API(500, MsgCreateFailed)
	}

	return c.JSON(CreateResponse{
		OK:   true,
		Data: resp.Item,
	})
}

// List handles news listing
func (h *Handlers) List(c *fiber.Ctx) error {
	resp, err := h.service.List(c.Context())
	if err != nil {
		return httperr.API(500, MsgListFailed)
	}

	return c.JSON(ListResponse{
		OK:   true,
		Data: resp.Items,
	})
}

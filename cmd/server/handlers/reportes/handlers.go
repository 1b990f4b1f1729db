package reportes

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"

	"alerta-vecinal/cmd/server/handlers/httperr"
	"alerta-vecinal/internal/logger"
	"alerta-vecinal/internal/services/reports"

	"github.com/gofiber/fiber/v2"
)

// Wire messages kept verbatim from the legacy API.
const (
	MsgMissingFields   = "Faltan campos obligatorios"
	MsgMissingUsuario  = "Falta el parámetro usuarioId"
	MsgReportCreated   = "Reporte creado exitosamente"
	MsgCreateFailed    = "Error al crear el reporte"
	MsgListFailed      = "Error al obtener los reportes"
	MsgImageSaveFailed = "Error al guardar la imagen"
)

// Service defines the interface for the reports service
type Service interface {
	Create(ctx context.Context, req reports.CreateReportRequest) (*reports.ReportResponse, error)
	List(ctx context.Context, usuarioID string) (*reports.ListReportsResponse, error)
}

// ImageStore persists uploaded report images and returns their public path
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// Handlers contains the reports HTTP handlers
type Handlers struct {
	service Service
	images  ImageStore
}

// NewHandlers creates new reports handlers
func NewHandlers(service Service, images ImageStore) *Handlers {
	return &Handlers{
		service: service,
		images:  images,
	}
}

// CreateResponse is the legacy success envelope for report creation
type CreateResponse struct {
	OK      bool            `json:"ok"`
	Mensaje string          `json:"mensaje"`
	Data    *reports.Report `json:"data"`
}

// ListResponse is the legacy success envelope for report listing
type ListResponse struct {
	OK   bool              `json:"ok"`
	Data []*reports.Report `json:"data"`
}

// Create handles report creation from a multipart form
func (h *Handlers) Create(c *fiber.Ctx) error {
	usuarioID := c.FormValue("usuarioId")
	lat, latErr := strconv.ParseFloat(c.FormValue("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.FormValue("lng"), 64)

	if usuarioID == "" || latErr != nil || lngErr != nil {
		logger.L().Warn("invalid report form", "handler", "Create",
			"usuarioId", usuarioID, "latErr", latErr, "lngErr", lngErr)
		return httperr.API(400, MsgMissingFields)
	}

	req := reports.CreateReportRequest{
		UsuarioID: usuarioID,
		Lat:       &lat,
		Lng:       &lng,
	}

	// The image is optional; a missing file field is not an error.
	if fh, err := c.FormFile("imagen"); err == nil && fh != nil {
		publicPath, err := h.images.Save(fh)
		if err != nil {
			logger.L().Error("failed to store report image", "handler", "Create", "error", err)
			return httperr.API(500, MsgImageSaveFailed)
		}
		req.Imagen = publicPath
	}

	resp, err := h.service.Create(c.Context(), req)
	if err != nil {
		if errors.Is(err, reports.ErrMissingFields) {
			return httperr.API(400, MsgMissingFields)
		}
		return httperr.API(500, MsgCreateFailed)
	}

	return c.Status(201).JSON(CreateResponse{
		OK:      true,
		Mensaje: MsgReportCreated,
		Data:    resp.Report,
	})
}

// List handles per-user report listing
func (h *Handlers) List(c *fiber.Ctx) error {
	usuarioID := c.Query("usuarioId")
	if usuarioID == "" {
		return httperr.API(400, MsgMissingUsuario)
	}

	resp, err := h.service.List(c.Context(), usuarioID)
	if err != nil {
		if errors.Is(err, reports.ErrMissingUsuarioID) {
			return httperr.API(400, MsgMissingUsuario)
		}
		return httperr.API(500, MsgListFailed)
	}

	return c.JSON(ListResponse{
		OK:   true,
		Data: resp.Reports,
	})
}

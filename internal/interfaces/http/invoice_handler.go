package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
)

// InvoiceHandler maneja la generación de rachunki y la descarga de documentos.
type InvoiceHandler struct {
	generate *billing.GenerateInvoiceUseCase
	docs     *billing.DocumentUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(generate *billing.GenerateInvoiceUseCase, docs *billing.DocumentUseCase) *InvoiceHandler {
	return &InvoiceHandler{generate: generate, docs: docs}
}

// Generate godoc
// @Summary      Generar rachunek PDF
// @Description  Valida y completa los datos del formulario, recalcula importes, genera el PDF y guarda copia.
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "system_instruction, invoice_data"
// @Success      200   {object}  dto.GenerateInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/invoice/generate [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.generate.Generate(c.Context(), &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Totals godoc
// @Summary      Calcular importes
// @Description  Importes por posición y sumas sin guardar nada.
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TotalsPreviewRequest  true  "pozycje"
// @Success      200   {object}  dto.TotalsPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoice/totals [post]
func (h *InvoiceHandler) Totals(c *fiber.Ctx) error {
	var in dto.TotalsPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := billing.PreviewTotals(&in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DueDate godoc
// @Summary      Termin płatności
// @Description  Fecha de emisión + 14 días. Acepta DD.MM.RRRR o RRRR-MM-DD.
// @Tags         invoice
// @Produce      json
// @Param        issue_date  query  string  true  "fecha de emisión"
// @Success      200  {object}  dto.DueDateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoice/due-date [get]
func (h *InvoiceHandler) DueDate(c *fiber.Ctx) error {
	issue, ok := invoice.ParseDate(c.Query("issue_date"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "issue_date requerido (DD.MM.RRRR o RRRR-MM-DD)"})
	}
	return c.JSON(dto.DueDateResponse{
		IssueDate: invoice.FormatDate(issue),
		DueDate:   invoice.FormatDate(invoice.DueDate(issue)),
		Days:      invoice.PaymentTermDays,
	})
}

// Document godoc
// @Summary      Descargar PDF o XML del rachunek
// @Description  El número puede contener barras (RACH/2025/01) o venir codificado (%2F).
// @Tags         invoice
// @Produce      application/pdf
// @Produce      application/xml
// @Param        number  path  string  true  "número del rachunek"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoice/{number}/pdf [get]
// @Router       /api/invoice/{number}/xml [get]
func (h *InvoiceHandler) Document(c *fiber.Ctx) error {
	rest := c.Params("*")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	}
	number, format := rest[:idx], rest[idx+1:]

	var (
		doc *billing.Document
		err error
	)
	switch format {
	case "pdf":
		doc, err = h.docs.PDF(c.Context(), number)
	case "xml":
		doc, err = h.docs.XML(c.Context(), number)
	default:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "formato no soportado: " + format})
	}
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	if doc.Digest != "" {
		c.Set("X-Document-Digest", doc.Digest)
	}
	return c.Send(doc.Content)
}

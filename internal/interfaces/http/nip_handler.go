package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/pkg/nip"
)

// CheckNIP godoc
// @Summary      Validar NIP
// @Description  Normaliza (sin espacios ni guiones) y comprueba el dígito de control.
// @Tags         nip
// @Produce      json
// @Param        nip  path  string  true  "NIP"
// @Success      200  {object}  dto.NIPResponse
// @Router       /api/nip/{nip} [get]
func CheckNIP(c *fiber.Ctx) error {
	raw := c.Params("nip")
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return c.JSON(dto.NIPResponse{
		NIP:        raw,
		Normalized: nip.Normalize(raw),
		Valid:      nip.Valid(raw),
		Formatted:  nip.Format(raw),
	})
}

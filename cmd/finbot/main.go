// finbot herramientas de línea de comandos para rachunki: validar NIP, calcular
// importes de un JSON de posiciones, plazo de pago y tokens de la API.
//
// Uso:
//
//	finbot nip 526-104-08-28 1234567890
//	finbot totals pozycje.json
//	finbot due-date 20.01.2025
//	finbot token --secret $AUTH_JWT_SECRET --subject formularz --scope "invoice:write"
package main

import (
	"os"

	"github.com/jhoicas/finbot-api/pkg/logger"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log := logger.New(logger.Config{Env: "development", Level: "error", Output: os.Stderr})
		log.Error().Err(err).Msg("finbot")
		os.Exit(1)
	}
}

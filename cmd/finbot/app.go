package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/pkg/jwt"
	"github.com/jhoicas/finbot-api/pkg/money"
	"github.com/jhoicas/finbot-api/pkg/nip"
)

// newApp arma la aplicación CLI escribiendo en out.
func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "finbot",
		Usage:   "herramientas para rachunki do umowy",
		Version: entity.FormatVersion,
		Writer:  out,
		Commands: []*cli.Command{
			nipCommand(),
			totalsCommand(),
			dueDateCommand(),
			tokenCommand(),
		},
	}
}

// ── nip ──────────────────────────────────────────────────────────────────────

func nipCommand() *cli.Command {
	return &cli.Command{
		Name:      "nip",
		Usage:     "valida uno o más NIP",
		ArgsUsage: "<nip>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "check-digit", Usage: "completa 9 dígitos con su dígito de control"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("check-digit") {
				return completeNIP(c)
			}
			ids := c.Args().Slice()
			if len(ids) == 0 {
				return fmt.Errorf("indique al menos un NIP")
			}
			w := c.App.Writer
			invalid := 0
			for _, id := range ids {
				status := "OK"
				if !nip.Valid(id) {
					status = "NIEPOPRAWNY"
					invalid++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", id, status, nip.Format(id))
			}
			if invalid > 0 {
				return fmt.Errorf("%d de %d NIP no son válidos", invalid, len(ids))
			}
			return nil
		},
	}
}

// completeNIP imprime el NIP completo para cada prefijo de 9 dígitos.
func completeNIP(c *cli.Context) error {
	prefixes := c.Args().Slice()
	if len(prefixes) == 0 {
		return fmt.Errorf("indique al menos 9 dígitos")
	}
	w := c.App.Writer
	for _, p := range prefixes {
		d, err := nip.CheckDigit(p)
		if errors.Is(err, nip.ErrNoCheckDigit) {
			fmt.Fprintf(w, "%s\tBRAK\t-\n", p)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		full := nip.Normalize(p) + strconv.Itoa(d)
		fmt.Fprintf(w, "%s\t%d\t%s\n", p, d, nip.Format(full))
	}
	return nil
}

// ── totals ───────────────────────────────────────────────────────────────────

// totalsFile acepta {"pozycje": [...]} o el cuerpo completo de generate.
type totalsFile struct {
	Lines       []dto.LineDTO       `json:"pozycje"`
	InvoiceData *dto.InvoiceDataDTO `json:"invoice_data"`
}

func totalsCommand() *cli.Command {
	return &cli.Command{
		Name:      "totals",
		Usage:     "calcula importes por posición y sumas de un archivo JSON",
		ArgsUsage: "<archivo.json>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("indique el archivo JSON")
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("leer %s: %w", path, err)
			}
			var in totalsFile
			if err := json.Unmarshal(raw, &in); err != nil {
				return fmt.Errorf("JSON inválido: %w", err)
			}
			lines := in.Lines
			if in.InvoiceData != nil && len(lines) == 0 {
				lines = in.InvoiceData.Lines
			}
			out, err := billing.PreviewTotals(&dto.TotalsPreviewRequest{Lines: lines})
			if err != nil {
				return err
			}
			return printTotals(c.App.Writer, lines, out)
		},
	}
}

func printTotals(w io.Writer, lines []dto.LineDTO, out *dto.TotalsPreviewResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Lp.\tNazwa\tNetto\tVAT\tBrutto\t")
	for i, l := range out.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", i+1, lines[i].Name,
			money.FormatPLN(l.NetValue.Decimal), money.FormatPLN(l.VATAmount.Decimal), money.FormatPLN(l.GrossValue.Decimal))
	}
	fmt.Fprintf(tw, "\tRAZEM\t%s\t%s\t%s\t\n",
		money.FormatPLN(out.NetTotal.Decimal), money.FormatPLN(out.VATTotal.Decimal), money.FormatPLN(out.GrossTotal.Decimal))
	return tw.Flush()
}

// ── due-date ─────────────────────────────────────────────────────────────────

func dueDateCommand() *cli.Command {
	return &cli.Command{
		Name:      "due-date",
		Usage:     "termin płatności: fecha de emisión + 14 días",
		ArgsUsage: "<DD.MM.RRRR|RRRR-MM-DD>",
		Action: func(c *cli.Context) error {
			issue, ok := invoice.ParseDate(c.Args().First())
			if !ok {
				return fmt.Errorf("fecha inválida %q", c.Args().First())
			}
			fmt.Fprintln(c.App.Writer, invoice.FormatDate(invoice.DueDate(issue)))
			return nil
		},
	}
}

// ── token ────────────────────────────────────────────────────────────────────

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "emite un token de API (Bearer) firmado con AUTH_JWT_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "secret", Usage: "secreto HMAC", EnvVars: []string{"AUTH_JWT_SECRET"}, Required: true},
			&cli.StringFlag{Name: "subject", Usage: "cliente del token", Required: true},
			&cli.StringSliceFlag{Name: "scope", Usage: "alcances (invoice:write, read)", Value: cli.NewStringSlice("read")},
			&cli.StringFlag{Name: "issuer", Value: "finbot-api", EnvVars: []string{"AUTH_JWT_ISSUER"}},
			&cli.IntFlag{Name: "exp-minutes", Usage: "validez en minutos", Value: 60 * 24 * 30},
		},
		Action: func(c *cli.Context) error {
			tok, err := jwt.Generate(
				c.String("secret"),
				c.String("subject"),
				strings.Join(c.StringSlice("scope"), " "),
				c.String("issuer"),
				c.Int("exp-minutes"),
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, tok)
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/tidyhome/dashboard-api/internal/domain"
)

var headers = map[string]map[string]string{
	"en": {
		"id": "ID", "name": "NAME", "type": "TYPE", "status": "STATUS", "city": "CITY",
		"next": "NEXT SERVICE", "balance": "BALANCE", "date": "DATE", "time": "TIME",
		"client": "CLIENT", "staff": "STAFF", "flags": "FLAGS",
		"none": "No matches", "clients": "%d client(s)", "jobs": "%d job(s)",
		"unassigned": "unassigned", "followUp": "follow-up", "notes": "notes",
	},
	"es": {
		"id": "ID", "name": "NOMBRE", "type": "TIPO", "status": "ESTADO", "city": "CIUDAD",
		"next": "PRÓXIMO SERVICIO", "balance": "SALDO", "date": "FECHA", "time": "HORA",
		"client": "CLIENTE", "staff": "PERSONAL", "flags": "MARCAS",
		"none": "Sin resultados", "clients": "%d cliente(s)", "jobs": "%d trabajo(s)",
		"unassigned": "sin asignar", "followUp": "seguimiento", "notes": "notas",
	},
}

// label looks a heading up for the locale, falling back to English
func label(locale, key string) string {
	if l, ok := headers[locale][key]; ok {
		return l
	}
	return headers["en"][key]
}

// pad left-aligns s in a cell of width runes. Padding is applied before
// colouring so escape codes do not throw the columns off.
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func jobStatusColor(status domain.JobStatus) *color.Color {
	switch status {
	case domain.JobStatusScheduled:
		return color.New(color.FgCyan)
	case domain.JobStatusInProgress:
		return color.New(color.FgYellow)
	case domain.JobStatusCompleted:
		return color.New(color.FgHiGreen)
	case domain.JobStatusCancelled:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgWhite)
	}
}

func balanceColor(status domain.BalanceStatus) *color.Color {
	switch status {
	case domain.BalanceStatusOverdue:
		return color.New(color.FgRed, color.Bold)
	case domain.BalanceStatusOutstanding:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func clientStatusColor(status domain.ClientStatus) *color.Color {
	switch status {
	case domain.ClientStatusActive:
		return color.New(color.FgHiGreen)
	case domain.ClientStatusLead:
		return color.New(color.FgHiMagenta)
	default:
		return color.New(color.FgHiBlack)
	}
}

func heading(cells ...string) string {
	return color.New(color.Bold).Sprint(strings.Join(cells, " "))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func cityOf(addresses []domain.Address) string {
	if len(addresses) == 0 {
		return ""
	}
	return addresses[0].City
}

func plural(locale, key string, n int) string {
	return fmt.Sprintf(label(locale, key), n)
}

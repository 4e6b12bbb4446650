package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

// Briefing is the monthly coach output: a short diagnosis of the user's
// finances plus one alert, one opportunity and one mission.
type Briefing struct {
	Diagnosis   string `json:"diagnosis"`
	Alert       string `json:"alert"`
	Opportunity string `json:"opportunity"`
	Mission     string `json:"mission"`
}

// fallbackBriefing is returned whenever the model cannot be reached or
// answers garbage. The advice flow never fails, it degrades.
var fallbackBriefing = Briefing{
	Diagnosis:   "No se pudo generar el diagnóstico. Revisa tu conexión o tu clave de API.",
	Alert:       "Sin alertas por ahora.",
	Opportunity: "Registra tus movimientos del mes para recibir un análisis.",
	Mission:     "Vuelve a intentarlo más tarde.",
}

// Advise derives the month's dashboard figures and asks the model for a
// coach briefing. It always returns a usable Briefing: on any failure
// the fixed fallback is returned instead of an error.
func Advise(ctx context.Context, client *genai.Client, l *wealth.Ledger, on wealth.Date) Briefing {
	d := l.NewDashboard(on)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"diagnosis":   {Type: genai.TypeString},
				"alert":       {Type: genai.TypeString},
				"opportunity": {Type: genai.TypeString},
				"mission":     {Type: genai.TypeString},
			},
			Required: []string{"diagnosis", "alert", "opportunity", "mission"},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			Eres un coach financiero directo y motivador. Respondes en
			español, en frases cortas. diagnosis resume la situación del
			mes, alert señala el mayor riesgo, opportunity la mejor
			palanca disponible y mission una sola acción concreta para
			esta semana.
		`}}},
	}

	prompt := briefingPrompt(d)
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return fallbackBriefing
	}
	return decodeBriefing([]byte(resp.Text()))
}

// briefingPrompt flattens the summary into the plain figures the model
// reasons about.
func briefingPrompt(d *wealth.Dashboard) string {
	s := d.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "Patrimonio neto: %s\n", s.NetWorth)
	fmt.Fprintf(&b, "Ingreso activo del mes: %s\n", s.ActiveIncome)
	fmt.Fprintf(&b, "Ingreso pasivo mensual: %s\n", s.PassiveIncome)
	fmt.Fprintf(&b, "Gastos del mes: %s\n", s.TotalExpenses)
	fmt.Fprintf(&b, "Flujo neto: %s\n", s.CashFlow)
	fmt.Fprintf(&b, "Libertad financiera: %s%%\n", s.FreedomPercentage)
	fmt.Fprintf(&b, "Emprendimientos activos: %d\n", s.VenturesCount)
	return b.String()
}

// decodeBriefing parses the model's JSON; anything unusable falls back.
func decodeBriefing(data []byte) Briefing {
	var b Briefing
	if err := json.Unmarshal(data, &b); err != nil {
		return fallbackBriefing
	}
	if b.Diagnosis == "" || b.Alert == "" || b.Opportunity == "" || b.Mission == "" {
		return fallbackBriefing
	}
	return b
}

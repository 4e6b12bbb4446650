// Package agent implements the AI boundary of the ledger: free-text
// quick entry of transactions and the monthly coach briefing, both
// backed by Gemini.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

const model = "gemini-2.5-flash"

// ErrParse is the user-facing failure of a quick entry. Whatever went
// wrong underneath (network, quota, malformed model output) the caller
// shows this single message.
var ErrParse = errors.New("No se pudo procesar la transacción con la IA")

// QuickEntry is the structured transaction extracted from free text.
// Category carries the resolved category id, empty when the model named
// no category or one that does not exist.
type QuickEntry struct {
	Amount      decimal.Decimal
	Description string
	Type        wealth.TransactionType
	CategoryID  string
}

// quickEntryJSON is the wire schema the model is asked to fill.
type quickEntryJSON struct {
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	CategoryName string  `json:"categoryName"`
}

// ParseQuickEntry asks the model to turn free text like "50 tacos" into
// a structured entry. The response is constrained to a JSON schema whose
// type and categoryName fields are closed enums, so the decode side only
// has to resolve names back to ids.
func ParseQuickEntry(ctx context.Context, client *genai.Client, l *wealth.Ledger, text string) (QuickEntry, error) {
	categories := l.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":      {Type: genai.TypeNumber},
				"description": {Type: genai.TypeString},
				"type": {
					Type: genai.TypeString,
					Enum: []string{string(wealth.Income), string(wealth.Expense)},
				},
				"categoryName": {
					Type: genai.TypeString,
					Enum: names,
				},
			},
			Required: []string{"amount", "description", "type"},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			Extrae una transacción financiera del texto del usuario.
			El monto siempre es positivo. El tipo es "Ingreso" cuando el
			usuario recibe dinero y "Egreso" cuando lo gasta. Elige la
			categoría que mejor calce, o ninguna si no hay una clara.
		`}}},
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(text), config)
	if err != nil {
		return QuickEntry{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return decodeQuickEntry([]byte(resp.Text()), l)
}

// decodeQuickEntry validates the model's JSON and resolves the category
// name against the ledger. Split from ParseQuickEntry so it is testable
// without a client.
func decodeQuickEntry(data []byte, l *wealth.Ledger) (QuickEntry, error) {
	var raw quickEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return QuickEntry{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if raw.Amount <= 0 || strings.TrimSpace(raw.Description) == "" {
		return QuickEntry{}, ErrParse
	}
	kind, err := wealth.ParseTransactionType(raw.Type)
	if err != nil || kind == wealth.Transfer {
		return QuickEntry{}, ErrParse
	}

	entry := QuickEntry{
		Amount:      decimal.NewFromFloat(raw.Amount),
		Description: strings.TrimSpace(raw.Description),
		Type:        kind,
	}
	for _, c := range l.Categories() {
		if c.Name == raw.CategoryName {
			entry.CategoryID = c.ID
			break
		}
	}
	return entry, nil
}

package agent

import (
	"context"
	"strings"

	"github.com/coinclarity/cryptotax"
	"github.com/coinclarity/cryptotax/renderer"
	"google.golang.org/genai"
)

// NewTaxAdvisor builds an expert that answers questions about one generated
// report. The model reads the report through two function tools so the raw
// numbers never have to be pasted into the prompt by the user.
func NewTaxAdvisor(report *cryptotax.TaxReport) *Expert {
	functions := []Function{
		summaryFunc(report),
		eventsFunc(report),
	}

	return &Expert{
		Name:        "tax_advisor",
		Description: "Answers questions about the generated crypto tax report.",
		ModelName:   "gemini-2.5-flash",
		Library:     NewLibrary(functions),
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are a crypto tax assistant. You explain the figures of a single,
already computed capital-gains report: how lots were matched, why an event
is short or long term, what a wash sale adjustment did to the totals.
Use the available functions to read the report. The estimates are not tax
advice; remind the user of that when they ask about filing decisions.
`}}},
		},
	}
}

func summaryFunc(report *cryptotax.TaxReport) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "tax_summary",
			Description: "Returns the year summary of the report as markdown.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The report summary in markdown.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "tax_summary",
				Response: map[string]any{"output": renderer.SummaryMarkdown(report)},
			}
		},
	}
}

func eventsFunc(report *cryptotax.TaxReport) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "taxable_events",
			Description: "Returns the taxable events of the report as a Form-8949 style CSV.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One CSV row per taxable event.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			if err := cryptotax.ExportForm8949(&b, report); err != nil {
				return &genai.FunctionResponse{
					ID:       id,
					Name:     "taxable_events",
					Response: map[string]any{"error": err.Error()},
				}
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "taxable_events",
				Response: map[string]any{"output": b.String()},
			}
		},
	}
}

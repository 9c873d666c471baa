package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/checklist"
	"github.com/etnz/checklist/docs"
	"github.com/etnz/checklist/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to assess companies against a fixed eleven-point value-investing checklist.
			Two of the eleven items, pricing power and economic moat, are judgement calls the numbers
			cannot settle. When the user asks about one of them, gather evidence from the Researcher
			and conclude with a conviction score between 0.0 and 1.0 the user can pass to
			'vic check -override pricing-power=SCORE' or 'vic check -override economic-moat=SCORE'.

			Ask the Analyst first to see which companies the user already fetched and how they score.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the expert grounding qualitative claims in search results.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an equity researcher.
		Very well aware of companies, their competitors, their brands and their markets,
		and of the latest news about them.
		Ask the Researcher whenever you need recent or grounding information about a business.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an equity researcher. You can search and find about anything related to
			companies, their products, competitors and markets. You leverage Google Search to
			ground your assertions in a solid truth.

			When asked about pricing power, look for evidence the company raised prices without
			losing customers. When asked about an economic moat, look for durable advantages:
			brands, switching costs, network effects, cost advantages, regulatory barriers.
				`}}},
		},
	}
}

// NewAnalyst returns the expert reading the checklists saved under dir.
func NewAnalyst(dir string) *Expert {

	lib := []Function{newRunChecklist(dir), newListCompanies(dir)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the fundamentals the user
		already fetched, and of running the value-investing checklist on them.
		He can list the fetched companies and score any of them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's fetched fundamentals.
				You know how to use the Tools to list the companies the user fetched and to
				run the value-investing checklist on any of them.
				You are part of a team of experts, yours is everything already on the user's disk.
				They might ask you questions with approximative tickers, figure out what they meant
				from the list of fetched companies.

				The checklist rules are documented below:

				` + must(docs.GetTopic("checklist")) + `

				` + must(docs.GetTopic("tiers"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// newRunChecklist evaluates a saved company and renders the report.
func newRunChecklist(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "RunChecklist",
			Description: `RunChecklist runs the eleven-point value-investing checklist on a company
			whose fundamentals were already fetched, and returns the full scored report.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The company ticker in SYMBOL.EXCHANGE format, e.g. AAPL.US.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted checklist report with the per-rule verdicts and the final tier.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, ok := args["ticker"].(string)
			if !ok {
				return errResponse(id, "RunChecklist", fmt.Errorf("argument 'ticker' is not a string but %T", args["ticker"]))
			}
			b, err := checklist.LoadBundle(dir, ticker)
			if err != nil {
				return errResponse(id, "RunChecklist", fmt.Errorf("no fundamentals for %q, fetch them first: %w", ticker, err))
			}
			report := checklist.Evaluate(b)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "RunChecklist",
				Response: map[string]any{
					"output": renderer.ChecklistMarkdown(renderer.NewChecklist(report)),
				},
			}
		},
	}
}

// newListCompanies lists the tickers with saved fundamentals.
func newListCompanies(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ListCompanies",
			Description: `ListCompanies lists all the tickers whose fundamentals the user already
			fetched and that RunChecklist can score.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One ticker per line, in SYMBOL.EXCHANGE format.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			tickers, err := checklist.ListBundles(dir)
			if err != nil {
				return errResponse(id, "ListCompanies", err)
			}
			if len(tickers) == 0 {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "ListCompanies",
					Response: map[string]any{
						"output": "no fundamentals fetched yet, use 'vic fetch TICKER' first",
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "ListCompanies",
				Response: map[string]any{
					"output": strings.Join(tickers, "\n"),
				},
			}
		},
	}
}

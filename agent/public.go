package agent

import (
	"context"
	"fmt"

	"github.com/sjhan/gagyebu"
	"github.com/sjhan/gagyebu/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// LedgerFile is the ledger the bookkeeper's tools read. The CLI sets it to
// its own ledger file before starting the agent.
var LedgerFile = "ledger.jsonl"

// Config is the ledger configuration used when replaying the file.
var Config = gagyebu.DefaultConfig()

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user keeps a household ledger: accounts, spendings, incomes, transfers,
			stock trades and currency exchanges. They are here primarily to understand
			where their money went and how their balances evolved.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns an expert with search grounding for questions beyond
// the ledger, such as market or price context.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert financial analyst,
		well aware of financial products, markets and exchange rates,
		and of the latest news about companies and funds.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial analyst. You can search and find anything related
			to financial institutions, companies, markets and currencies. You leverage
			Google Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of reading the user's ledger.
func NewBookkeeper() *Expert {
	lib := []Function{Balances, Transactions, MonthlySums}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper, in charge of reading the user's household
		ledger: listing account balances, searching recorded transactions and
		computing monthly sums per kind.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's household ledger.
				You know how to use the Tools to extract relevant information:
				  - account balances per currency
				  - recorded transactions, filtered by period or note
				  - monthly sums of spendings, incomes and transfers
				You are part of a team of experts; pardon their approximative language
				and figure out what they meant.
			`}}},
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

func response(id, name string, output string, err error) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = output
	return fresp
}

// Balances lists every account with its balances.
var Balances = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Balances",
		Description: `Balances lists every account in the ledger with its current balance, per currency.`,
		Parameters:  &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of accounts and balances.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		store, err := openStore()
		if err != nil {
			return response(id, "Balances", "", err)
		}
		return response(id, "Balances", renderer.Balances(store.Accounts()), nil)
	},
}

// Transactions searches the recorded transactions.
var Transactions = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Transactions",
		Description: `Transactions lists the recorded spendings, incomes and transfers,
		optionally restricted to a period or to notes containing a text.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"from": {Type: genai.TypeString, Description: "Inclusive start date, YYYY-MM-DD. Open if omitted."},
				"to":   {Type: genai.TypeString, Description: "Inclusive end date, YYYY-MM-DD. Open if omitted."},
				"note": {Type: genai.TypeString, Description: "Only transactions whose note contains this text."},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of matching transactions.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		filter := gagyebu.SearchFilter{}
		var err error
		if filter.From, err = argDate(args, "from"); err != nil {
			return response(id, "Transactions", "", err)
		}
		if filter.To, err = argDate(args, "to"); err != nil {
			return response(id, "Transactions", "", err)
		}
		if note, ok := args["note"].(string); ok {
			filter.Note = note
		}
		store, err := openStore()
		if err != nil {
			return response(id, "Transactions", "", err)
		}
		return response(id, "Transactions", renderer.Transactions(gagyebu.Search(store, filter), store), nil)
	},
}

// MonthlySums aggregates transaction amounts per month and kind.
var MonthlySums = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "MonthlySums",
		Description: `MonthlySums computes, for each month in the period, the total amount
		and fees spent, received and transferred in one currency.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"from":     {Type: genai.TypeString, Description: "Inclusive start date, YYYY-MM-DD. Open if omitted."},
				"to":       {Type: genai.TypeString, Description: "Inclusive end date, YYYY-MM-DD. Open if omitted."},
				"currency": {Type: genai.TypeString, Description: "Currency to sum. The ledger's base currency if omitted."},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of monthly sums per kind.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		from, err := argDate(args, "from")
		if err != nil {
			return response(id, "MonthlySums", "", err)
		}
		to, err := argDate(args, "to")
		if err != nil {
			return response(id, "MonthlySums", "", err)
		}
		currency := Config.BaseCurrency
		if cv, ok := args["currency"].(string); ok && cv != "" {
			currency = cv
		}
		store, err := openStore()
		if err != nil {
			return response(id, "MonthlySums", "", err)
		}
		return response(id, "MonthlySums", renderer.KindSums(gagyebu.MonthlyKindSums(store, from, to, currency)), nil)
	},
}

// openStore loads the ledger the tools report on.
func openStore() (gagyebu.Store, error) {
	store, err := gagyebu.LoadStore(LedgerFile, Config)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	return store, nil
}

// argDate reads an optional date argument. A missing argument is the zero
// date, which queries treat as an open bound.
func argDate(args map[string]any, key string) (gagyebu.Date, error) {
	iv, ok := args[key]
	if !ok {
		return gagyebu.Date{}, nil
	}
	sv, ok := iv.(string)
	if !ok {
		return gagyebu.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, iv)
	}
	if sv == "" {
		return gagyebu.Date{}, nil
	}
	return gagyebu.ParseDate(sv)
}

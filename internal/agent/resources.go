package agent

import (
	"context"
	"fmt"

	"github.com/iho/fxbank/internal/adapter/http/dto"
)

// Resource URIs exposed to clients.
const (
	ResourceUsers  = "bank://users"
	ResourceFXRate = "bank://fx-rate"
)

// PromptTransferAssistant names the canned prompt clients can fetch to
// prime an assistant for transfer conversations.
const PromptTransferAssistant = "transfer-assistant"

// Resource describes one readable URI.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Resources returns the resource catalogue.
func (t *Toolbox) Resources() []Resource {
	return []Resource{
		{
			URI:         ResourceUsers,
			Name:        "Bank users",
			Description: "Every user with their AUD and USD account balances.",
		},
		{
			URI:         ResourceFXRate,
			Name:        "AUD/USD exchange rate",
			Description: "The current AUD to USD exchange rate.",
		},
	}
}

// ReadResource resolves one resource URI against the use cases.
func (t *Toolbox) ReadResource(ctx context.Context, uri string) (any, error) {
	switch uri {
	case ResourceUsers:
		users, err := t.userUC.Roster(ctx)
		if err != nil {
			return nil, err
		}

		return dto.UsersFromDomain(users), nil
	case ResourceFXRate:
		rate, err := t.rateUC.Get(ctx)
		if err != nil {
			return nil, err
		}

		return dto.RateFromDomain(rate), nil
	default:
		return nil, fmt.Errorf("unknown resource %q", uri)
	}
}

const transferAssistantPrompt = `You help users move money between their AUD and USD accounts.

Start by calling get-user-balance to identify the user and their balances,
and get-fx-rate for the current AUD to USD rate. Use
check-transfer-eligibility before proposing a transfer, and transfer-funds
to execute one. When the transfer tool asks a question, relay it to the
user and send their answer back as a choice. Never invent balances or
rates; always read them from the tools.`

// Prompt returns the named canned prompt.
func (t *Toolbox) Prompt(name string) (string, error) {
	if name != PromptTransferAssistant {
		return "", fmt.Errorf("unknown prompt %q", name)
	}

	return transferAssistantPrompt, nil
}

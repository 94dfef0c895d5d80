package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
)

// Tool names exposed to clients.
const (
	ToolGetUserBalance   = "get-user-balance"
	ToolGetFXRate        = "get-fx-rate"
	ToolCheckEligibility = "check-transfer-eligibility"
	ToolTransferFunds    = "transfer-funds"
)

// Tool describes one callable operation.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Toolbox dispatches tool calls onto the use cases.
type Toolbox struct {
	userUC     *usecase.UserUseCase
	rateUC     *usecase.RateUseCase
	transferUC *usecase.TransferUseCase
}

// NewToolbox creates a Toolbox.
func NewToolbox(userUC *usecase.UserUseCase, rateUC *usecase.RateUseCase, transferUC *usecase.TransferUseCase) *Toolbox {
	return &Toolbox{
		userUC:     userUC,
		rateUC:     rateUC,
		transferUC: transferUC,
	}
}

var currencyEnum = []string{string(domain.CurrencyAUD), string(domain.CurrencyUSD)}

var conditionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"operator": map[string]any{"type": "string", "enum": []string{"below", "above"}},
		"value":    map[string]any{"type": "string", "description": "Rate threshold, e.g. \"0.70\""},
	},
	"required": []string{"operator", "value"},
}

// List returns the tool catalogue.
func (t *Toolbox) List() []Tool {
	return []Tool{
		{
			Name:        ToolGetUserBalance,
			Description: "Look up a user and their account balances by ID or name.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"user_id":   map[string]any{"type": "string"},
					"user_name": map[string]any{"type": "string"},
				},
			},
		},
		{
			Name:        ToolGetFXRate,
			Description: "Get the current AUD to USD exchange rate.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        ToolCheckEligibility,
			Description: "Check whether a transfer out of an account could proceed, without moving money.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"user_id":       map[string]any{"type": "string"},
					"from_currency": map[string]any{"type": "string", "enum": currencyEnum},
					"amount":        map[string]any{"type": "string"},
					"condition":     conditionSchema,
				},
				"required": []string{"user_id", "from_currency", "amount"},
			},
		},
		{
			Name:        ToolTransferFunds,
			Description: "Transfer money between a user's currency accounts. Missing parameters are asked interactively.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"user_id":       map[string]any{"type": "string"},
					"user_name":     map[string]any{"type": "string"},
					"from_currency": map[string]any{"type": "string", "enum": currencyEnum},
					"to_currency":   map[string]any{"type": "string", "enum": currencyEnum},
					"amount":        map[string]any{"type": "string"},
					"condition":     conditionSchema,
				},
				"required": []string{"from_currency", "amount"},
			},
		},
	}
}

type balanceArgs struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

type eligibilityArgs struct {
	UserID    string                    `json:"user_id"`
	From      string                    `json:"from_currency"`
	Amount    decimal.Decimal           `json:"amount"`
	Condition *dto.RateConditionRequest `json:"condition"`
}

type transferArgs struct {
	UserID    string                    `json:"user_id"`
	UserName  string                    `json:"user_name"`
	From      string                    `json:"from_currency"`
	To        string                    `json:"to_currency"`
	Amount    decimal.Decimal           `json:"amount"`
	Condition *dto.RateConditionRequest `json:"condition"`
}

// Call runs one tool. Domain rejections come back as errors; rendering
// them as readable refusals is the transport's job.
func (t *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	switch name {
	case ToolGetUserBalance:
		return t.getUserBalance(ctx, args)
	case ToolGetFXRate:
		return t.getFXRate(ctx)
	case ToolCheckEligibility:
		return t.checkEligibility(ctx, args)
	case ToolTransferFunds:
		return t.transferFunds(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

func (t *Toolbox) getUserBalance(ctx context.Context, raw json.RawMessage) (any, error) {
	var args balanceArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}

	// No identity given: return the roster instead of asking.
	if args.UserID == "" && args.UserName == "" {
		users, err := t.userUC.Roster(ctx)
		if err != nil {
			return nil, err
		}

		return dto.UsersFromDomain(users), nil
	}

	user, err := t.userUC.Lookup(ctx, args.UserID, args.UserName)
	if err != nil {
		return nil, err
	}

	return dto.UserFromDomain(user), nil
}

func (t *Toolbox) getFXRate(ctx context.Context) (any, error) {
	rate, err := t.rateUC.Get(ctx)
	if err != nil {
		return nil, err
	}

	return dto.RateFromDomain(rate), nil
}

func (t *Toolbox) checkEligibility(ctx context.Context, raw json.RawMessage) (any, error) {
	var args eligibilityArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}

	req := dto.CheckEligibilityRequest{Condition: args.Condition}

	acc, err := t.transferUC.CheckEligibility(ctx, args.UserID, domain.Currency(args.From), args.Amount, req.ToCondition())
	if err != nil {
		return dto.EligibilityResponse{
			Eligible: false,
			Currency: args.From,
			Reason:   err.Error(),
		}, nil
	}

	return dto.EligibilityResponse{
		Eligible: true,
		Currency: string(acc.Currency),
		Balance:  acc.Balance,
	}, nil
}

func (t *Toolbox) transferFunds(ctx context.Context, raw json.RawMessage) (any, error) {
	var args transferArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}

	req := dto.CreateTransferRequest{
		UserID:    args.UserID,
		UserName:  args.UserName,
		From:      args.From,
		To:        args.To,
		Amount:    args.Amount,
		Condition: args.Condition,
	}

	result, err := t.transferUC.Transfer(ctx, req.ToUseCaseInput())
	if err != nil {
		return nil, err
	}

	return dto.TransferFromDomain(result), nil
}

func unmarshalArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}

	return nil
}

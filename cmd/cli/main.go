package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/fxbank/internal/adapter/http/dto"
	"github.com/iho/fxbank/internal/adapter/repository/memory"
	"github.com/iho/fxbank/internal/adapter/upstream"
	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/usecase"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fxbank-cli",
		Short: "FXBank CLI tool",
		Long:  `A command line interface for the FXBank transfer API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FXBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(rateCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(transferCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newClient() *upstream.Client {
	return upstream.NewClient(baseURL, upstream.WithHTTPClient(&http.Client{Timeout: timeout}))
}

func newTransferUseCase(client *upstream.Client, elicitor usecase.Elicitor) *usecase.TransferUseCase {
	return usecase.NewTransferUseCase(
		client,
		client,
		client,
		usecase.NewResolver(client, elicitor),
		usecase.NewEvaluator(client),
		memory.NewULIDGenerator(),
	)
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users and their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := newClient().List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%-6s %-20s %-12s %-12s\n", "ID", "NAME", "AUD", "USD")
			for _, u := range users {
				fmt.Printf("%-6s %-20s %-12s %-12s\n",
					u.ID,
					truncate(u.Name, 20),
					balanceOf(u, domain.CurrencyAUD),
					balanceOf(u, domain.CurrencyUSD),
				)
			}

			return nil
		},
	}
}

func balanceCmd() *cobra.Command {
	var userID, userName string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show one user's accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			userUC := usecase.NewUserUseCase(newClient())

			user, err := userUC.Lookup(cmd.Context(), userID, userName)
			if err != nil {
				return err
			}

			printJSON(dto.UserFromDomain(user))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "id", "", "User ID")
	cmd.Flags().StringVar(&userName, "name", "", "User name")

	return cmd
}

func rateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show the current AUD to USD exchange rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := newClient().Get(cmd.Context())
			if err != nil {
				return err
			}

			printJSON(dto.RateFromDomain(rate))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <rate>",
		Short: "Overwrite the exchange rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[0], err)
			}

			client := newClient()
			if err := client.Set(cmd.Context(), rate); err != nil {
				return err
			}

			printJSON(dto.RateFromDomain(rate))
			return nil
		},
	})

	return cmd
}

func checkCmd() *cobra.Command {
	var userID, from, amount string
	var below, above string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check transfer eligibility without moving money",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			cond, err := buildCondition(below, above)
			if err != nil {
				return err
			}

			transferUC := newTransferUseCase(newClient(), declineElicitor{})

			acc, err := transferUC.CheckEligibility(cmd.Context(), userID, domain.Currency(from), amt, cond)
			if err != nil {
				printJSON(dto.EligibilityResponse{Eligible: false, Currency: from, Reason: err.Error()})
				return nil
			}

			printJSON(dto.EligibilityResponse{
				Eligible: true,
				Currency: string(acc.Currency),
				Balance:  acc.Balance,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&from, "from", "", "Source currency (AUD or USD)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.Flags().StringVar(&below, "below", "", "Only proceed while the rate is below this value")
	cmd.Flags().StringVar(&above, "above", "", "Only proceed while the rate is above this value")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func transferCmd() *cobra.Command {
	var userID, userName, from, to, amount string
	var below, above string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer between a user's currency accounts",
		Long: `Transfer money between a user's currency accounts.

Leave --to unset to be prompted for the target currency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			cond, err := buildCondition(below, above)
			if err != nil {
				return err
			}

			elicitor := &promptElicitor{in: bufio.NewReader(cmd.InOrStdin())}
			transferUC := newTransferUseCase(newClient(), elicitor)

			result, err := transferUC.Transfer(cmd.Context(), usecase.TransferInput{
				UserID:    userID,
				UserName:  userName,
				From:      domain.Currency(from),
				To:        domain.Currency(to),
				Amount:    amt,
				Condition: cond,
			})
			if err != nil {
				return err
			}

			printJSON(dto.TransferFromDomain(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&userName, "name", "", "User name")
	cmd.Flags().StringVar(&from, "from", "", "Source currency (AUD or USD)")
	cmd.Flags().StringVar(&to, "to", "", "Target currency; prompted for when unset")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.Flags().StringVar(&below, "below", "", "Only proceed while the rate is below this value")
	cmd.Flags().StringVar(&above, "above", "", "Only proceed while the rate is above this value")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func buildCondition(below, above string) (*domain.RateCondition, error) {
	if below != "" && above != "" {
		return nil, fmt.Errorf("--below and --above are mutually exclusive")
	}

	raw, op := below, domain.RateBelow
	if above != "" {
		raw, op = above, domain.RateAbove
	}
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid rate threshold %q: %w", raw, err)
	}

	return &domain.RateCondition{Operator: op, Value: value}, nil
}

// promptElicitor answers missing-field questions from the terminal.
// An empty line or "no" declines.
type promptElicitor struct {
	in *bufio.Reader
}

func (p *promptElicitor) Elicit(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error) {
	fmt.Println(req.Message)
	for _, opt := range req.Options {
		fmt.Printf("  %-6s %s\n", opt.Value, opt.Label)
	}
	fmt.Print("> ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return domain.ChoiceResponse{Action: domain.ChoiceDecline}, nil
	}

	answer := strings.TrimSpace(line)
	if answer == "" || strings.EqualFold(answer, "n") || strings.EqualFold(answer, "no") {
		return domain.ChoiceResponse{Action: domain.ChoiceDecline}, nil
	}

	return domain.ChoiceResponse{Action: domain.ChoiceAccept, Value: strings.ToUpper(answer)}, nil
}

// declineElicitor refuses every question. Commands that never prompt
// use it so a stray question fails fast instead of hanging.
type declineElicitor struct{}

func (declineElicitor) Elicit(context.Context, domain.ChoiceRequest) (domain.ChoiceResponse, error) {
	return domain.ChoiceResponse{Action: domain.ChoiceDecline}, nil
}

func balanceOf(u *domain.User, currency domain.Currency) string {
	if acc, ok := u.Account(currency); ok {
		return acc.Balance.String()
	}

	return "-"
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}

	fmt.Println(string(data))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-3] + "..."
}

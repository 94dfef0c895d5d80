package main

import (
	"context"
	"testing"

	"github.com/iho/fxbank/internal/domain"
)

func TestDeclineElicitorAlwaysDeclines(t *testing.T) {
	resp, err := declineElicitor{}.Elicit(context.Background(), domain.ChoiceRequest{
		Field:   "to_currency",
		Options: []domain.ChoiceOption{{Value: "USD"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Action != domain.ChoiceDecline {
		t.Fatalf("expected decline, got %+v", resp)
	}
}

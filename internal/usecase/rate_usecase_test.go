package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/fxbank/internal/usecase"
	"github.com/iho/fxbank/internal/usecase/mocks"
)

func TestRateUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewGomockRateSource(ctrl)
	rates.EXPECT().Get(gomock.Any()).Return(decimal.RequireFromString("0.68"), nil)

	uc := usecase.NewRateUseCase(rates)

	rate, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rate.Equal(decimal.RequireFromString("0.68")) {
		t.Errorf("expected 0.68, got %s", rate)
	}
}

func TestRateUseCase_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRate := decimal.RequireFromString("0.75")

	rates := mocks.NewGomockRateSource(ctrl)
	rates.EXPECT().Set(gomock.Any(), newRate).Return(nil)
	rates.EXPECT().Get(gomock.Any()).Return(newRate, nil)

	uc := usecase.NewRateUseCase(rates)

	got, err := uc.Set(context.Background(), newRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Equal(newRate) {
		t.Errorf("expected %s, got %s", newRate, got)
	}
}

func TestRateUseCase_Set_Permissive(t *testing.T) {
	// The baseline contract accepts any value, including non-positive.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zero := decimal.Zero

	rates := mocks.NewGomockRateSource(ctrl)
	rates.EXPECT().Set(gomock.Any(), zero).Return(nil)
	rates.EXPECT().Get(gomock.Any()).Return(zero, nil)

	uc := usecase.NewRateUseCase(rates)

	if _, err := uc.Set(context.Background(), zero); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateOperator compares the live exchange rate against a threshold.
type RateOperator string

const (
	RateBelow RateOperator = "below"
	RateAbove RateOperator = "above"
)

// IsValid checks if the operator is a known comparison.
func (o RateOperator) IsValid() bool {
	return o == RateBelow || o == RateAbove
}

// RateCondition is an optional gate requiring the live exchange rate to
// be strictly below or above a threshold before a transfer may commit.
// Boundary equality fails both operators.
type RateCondition struct {
	Operator RateOperator    `json:"operator"`
	Value    decimal.Decimal `json:"value"`
}

// Validate validates the condition's operator.
func (c *RateCondition) Validate() error {
	if !c.Operator.IsValid() {
		return fmt.Errorf("%w: unknown operator %q", ErrInvalidCondition, c.Operator)
	}

	return nil
}

// Met evaluates the condition against the current rate.
func (c *RateCondition) Met(current decimal.Decimal) bool {
	if c.Operator == RateBelow {
		return current.LessThan(c.Value)
	}

	return current.GreaterThan(c.Value)
}

func (c *RateCondition) String() string {
	return fmt.Sprintf("rate must be %s %s", c.Operator, c.Value)
}

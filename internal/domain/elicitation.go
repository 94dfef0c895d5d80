package domain

// ChoiceOption is one enumerated value in a choice request, with a
// human-readable label such as "USD (Balance: 500)".
type ChoiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoiceRequest asks the counterpart to pick a value for a missing
// field. The orchestration suspends until a response or cancellation
// arrives. There is no retry loop: one round per missing field.
type ChoiceRequest struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Options []ChoiceOption `json:"options"`
}

// Allows reports whether value is in the enumerated set. Accepted
// answers outside the set are treated as cancellation.
func (r *ChoiceRequest) Allows(value string) bool {
	for _, o := range r.Options {
		if o.Value == value {
			return true
		}
	}

	return false
}

// ChoiceAction is the counterpart's disposition of a choice request.
type ChoiceAction string

const (
	ChoiceAccept  ChoiceAction = "accept"
	ChoiceDecline ChoiceAction = "decline"
)

// ChoiceResponse is the answer to a ChoiceRequest.
type ChoiceResponse struct {
	Action ChoiceAction `json:"action"`
	Value  string       `json:"value,omitempty"`
}

// Accepted reports whether the response accepts with a value from the
// request's enumerated set.
func (resp *ChoiceResponse) Accepted(req *ChoiceRequest) bool {
	return resp.Action == ChoiceAccept && resp.Value != "" && req.Allows(resp.Value)
}

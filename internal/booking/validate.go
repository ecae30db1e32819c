package booking

// Validation failure codes for a booking draft. All are recoverable by
// editing the draft; none is fatal.
const (
	NoRoomsSelected  = "no_rooms_selected"
	NoGuests         = "no_guests"
	InvalidDateRange = "invalid_date_range"
)

var failureMessages = map[string]string{
	NoRoomsSelected:  "select at least one room",
	NoGuests:         "at least one adult guest is required",
	InvalidDateRange: "check-out must be after check-in",
}

// Failure is a single validation failure with a stable code and a
// user-facing message.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of Draft.Validate.
type ValidationResult struct {
	Failures []Failure `json:"failures,omitempty"`
}

// OK reports whether the draft passed all checks.
func (r ValidationResult) OK() bool {
	return len(r.Failures) == 0
}

// Has reports whether the result contains a failure with the code.
func (r ValidationResult) Has(code string) bool {
	for _, f := range r.Failures {
		if f.Code == code {
			return true
		}
	}
	return false
}

// Validate gates submission: at least one room selected, at least one
// adult, check-out strictly after check-in. Evaluated once, right
// before handing the draft to payment.
func (d *Draft) Validate() ValidationResult {
	var result ValidationResult
	if d.RoomSubtotal() == 0 {
		result.add(NoRoomsSelected)
	}
	if d.Adults == 0 {
		result.add(NoGuests)
	}
	if !d.CheckOut.After(d.CheckIn) {
		result.add(InvalidDateRange)
	}
	return result
}

func (r *ValidationResult) add(code string) {
	r.Failures = append(r.Failures, Failure{Code: code, Message: failureMessages[code]})
}

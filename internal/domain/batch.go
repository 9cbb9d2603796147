package domain

import (
	"errors"
	"time"
)

// Batch is a named list of conversions loaded from a batch file.
type Batch struct {
	Name  string
	Items []BatchItem
}

// BatchItem describes a single conversion plus optional value source and expectation.
type BatchItem struct {
	Name    string
	Request ConversionRequest

	// ValueFrom, when set, replaces Request.Value with a number read from a JSON document.
	ValueFrom *JSONValueSource
	Expect    *Expectation
}

// JSONValueSource points at a number inside a JSON file.
type JSONValueSource struct {
	File string
	Path string
}

// Expectation is a checked result value with an absolute tolerance.
type Expectation struct {
	Value     float64
	Tolerance float64
}

// CheckResult is the output of a single expectation check.
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ItemError is a serializable summary of a failed item.
type ItemError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewItemError classifies err by its OpError kind when it has one.
func NewItemError(err error) *ItemError {
	if err == nil {
		return nil
	}
	kind := KindExecution
	var oe *OpError
	if errors.As(err, &oe) {
		kind = oe.Kind
	}
	return &ItemError{Kind: kind, Message: err.Error()}
}

// ItemResult is the outcome of one batch item.
type ItemResult struct {
	Name    string            `json:"name"`
	Request ConversionRequest `json:"request"`
	Result  *ConversionResult `json:"result,omitempty"`
	Checks  []CheckResult     `json:"checks,omitempty"`
	Error   *ItemError        `json:"error,omitempty"`
}

// Failed reports whether the item errored or any check did not pass.
func (r ItemResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return true
		}
	}
	return false
}

// BatchResult is the outcome of running a whole batch.
type BatchResult struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	File      string       `json:"file"`
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at"`
	Items     []ItemResult `json:"items"`
}

// Failures counts failed items.
func (b BatchResult) Failures() int {
	n := 0
	for _, it := range b.Items {
		if it.Failed() {
			n++
		}
	}
	return n
}

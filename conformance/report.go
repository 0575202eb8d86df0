package conformance

import (
	"fmt"
	"strings"
)

// Status is the outcome of a single conformance case.
type Status string

// Case outcomes.
const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// CaseResult records the outcome of one conformance case.
type CaseResult struct {
	Suite  string
	Case   string
	Status Status
	// Detail holds the failure message or skip reason.
	Detail string
}

// Report aggregates the outcome of a conformance run.
type Report struct {
	// Provider is the name of the provider the run exercised.
	Provider string
	// Group names the test group when the run was started with a
	// provider override; empty otherwise.
	Group string
	// SuiteOrder lists executed suites in invocation order, one entry
	// per invocation. A suite that the table declares twice appears
	// twice.
	SuiteOrder []string
	// Cases holds every recorded case result in execution order.
	Cases []CaseResult
}

// Counts returns the number of passed, failed and skipped cases.
func (r *Report) Counts() (pass, fail, skip int) {
	for _, c := range r.Cases {
		switch c.Status {
		case StatusPass:
			pass++
		case StatusFail:
			fail++
		case StatusSkip:
			skip++
		}
	}
	return pass, fail, skip
}

// Failed reports whether any case failed.
func (r *Report) Failed() bool {
	for _, c := range r.Cases {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}

// Failures returns the failed cases.
func (r *Report) Failures() []CaseResult {
	var out []CaseResult
	for _, c := range r.Cases {
		if c.Status == StatusFail {
			out = append(out, c)
		}
	}
	return out
}

// Summary renders a one-line human-readable summary.
func (r *Report) Summary() string {
	pass, fail, skip := r.Counts()
	var b strings.Builder
	fmt.Fprintf(&b, "provider %s: %d passed, %d failed, %d skipped", r.Provider, pass, fail, skip)
	return b.String()
}

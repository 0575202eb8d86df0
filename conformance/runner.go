package conformance

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stevenspiel/cryptography/provider"
)

// Runner is handed to each suite and records case outcomes against the
// provider under test.
type Runner struct {
	prov   provider.Provider
	suite  string
	algs   []provider.Algorithm
	log    *logrus.Entry
	report *Report
}

// Algorithms returns the algorithm list the current table entry declares.
func (r *Runner) Algorithms() []provider.Algorithm {
	return r.algs
}

// Provider returns the provider under test. Suites receive the provider
// through the Runner rather than reading the process-wide selection, so
// a suite's behavior depends only on its inputs.
func (r *Runner) Provider() provider.Provider {
	return r.prov
}

// Supports reports whether the provider under test claims alg.
func (r *Runner) Supports(alg provider.Algorithm) bool {
	return provider.Supports(r.prov, alg)
}

// Case executes fn and records a pass or fail result under name.
// A panic inside fn is recorded as a failure rather than aborting the
// run, so one broken algorithm cannot hide results for the others.
func (r *Runner) Case(name string, fn func() error) {
	err := runCase(fn)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"suite": r.suite,
			"case":  name,
			"error": err.Error(),
		}).Error("conformance case failed")
		r.record(CaseResult{Suite: r.suite, Case: name, Status: StatusFail, Detail: err.Error()})
		return
	}
	r.log.WithFields(logrus.Fields{
		"suite": r.suite,
		"case":  name,
	}).Debug("conformance case passed")
	r.record(CaseResult{Suite: r.suite, Case: name, Status: StatusPass})
}

// Skip records that a case was not run, with the reason.
func (r *Runner) Skip(name, reason string) {
	r.log.WithFields(logrus.Fields{
		"suite":  r.suite,
		"case":   name,
		"reason": reason,
	}).Debug("conformance case skipped")
	r.record(CaseResult{Suite: r.suite, Case: name, Status: StatusSkip, Detail: reason})
}

// SkipUnsupported records a capability skip for alg and reports whether
// the suite should proceed with it.
func (r *Runner) SkipUnsupported(alg provider.Algorithm) bool {
	if r.Supports(alg) {
		return false
	}
	r.Skip(string(alg), "algorithm not in provider capability set")
	return true
}

func (r *Runner) record(c CaseResult) {
	r.report.Cases = append(r.report.Cases, c)
}

func runCase(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}

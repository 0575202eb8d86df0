package conformance

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stevenspiel/cryptography/provider"
)

// Suite is one entry in the declared conformance table.
type Suite struct {
	// Name identifies the suite in reports and logs.
	Name string
	// Family is the algorithm family the suite exercises.
	Family provider.Family
	// Algorithms lists the algorithms the suite covers.
	Algorithms []provider.Algorithm
	// Enabled suites run as part of RunAll; disabled entries are kept in
	// the table for review but recorded as skipped.
	Enabled bool
	// Run executes the suite's cases against the Runner's provider.
	Run func(*Runner)
}

// Suites returns the conformance table in declared execution order.
//
// The order is carried over from the harness this package replaces: the
// ECDSA suite runs once at the top in addition to its normal position in
// the signature group, and the ECDH-P256 key-exchange entry is present
// but disabled. Both carry-overs are kept visible here instead of being
// silently dropped.
// TODO: confirm with the provider maintainers whether the early ECDSA run
// and the disabled ECDH-P256 entry are still wanted, then normalize the
// table.
func Suites() []Suite {
	return []Suite{
		// Early ECDSA run, duplicated from the signature group below.
		{Name: "ecdsa", Family: provider.FamilySignature, Algorithms: []provider.Algorithm{provider.ECDSAP256}, Enabled: true, Run: runECDSASuite},

		// Hash algorithms.
		{Name: "sha2", Family: provider.FamilyHash, Algorithms: []provider.Algorithm{provider.SHA256, provider.SHA512}, Enabled: true, Run: runHashSuite},
		{Name: "sha3", Family: provider.FamilyHash, Algorithms: []provider.Algorithm{provider.SHA3256}, Enabled: true, Run: runHashSuite},
		{Name: "blake2", Family: provider.FamilyHash, Algorithms: []provider.Algorithm{provider.BLAKE2b256, provider.BLAKE2s256}, Enabled: true, Run: runHashSuite},

		// Symmetric ciphers.
		{Name: "aes-modes", Family: provider.FamilyBlockCipher, Algorithms: []provider.Algorithm{provider.AES256CTR, provider.AES256CBC, provider.EMEAES256}, Enabled: true, Run: runBlockCipherSuite},
		{Name: "chacha20", Family: provider.FamilyStreamCipher, Algorithms: []provider.Algorithm{provider.ChaCha20}, Enabled: true, Run: runStreamCipherSuite},
		{Name: "aead", Family: provider.FamilyAEAD, Algorithms: []provider.Algorithm{provider.AES256GCM, provider.AESSIV, provider.ChaCha20Poly1305, provider.XChaCha20Poly1305, provider.XSalsa20Poly1305}, Enabled: true, Run: runAEADSuite},

		// Key exchange. The ECDH-P256 entry was disabled in the harness
		// this table was carried over from.
		{Name: "x25519", Family: provider.FamilyKeyExchange, Algorithms: []provider.Algorithm{provider.X25519}, Enabled: true, Run: runKeyExchangeSuite},
		{Name: "ecdh-p256", Family: provider.FamilyKeyExchange, Algorithms: []provider.Algorithm{provider.ECDHP256}, Enabled: false, Run: runKeyExchangeSuite},

		// Signature algorithms.
		{Name: "ed25519", Family: provider.FamilySignature, Algorithms: []provider.Algorithm{provider.Ed25519}, Enabled: true, Run: runEd25519Suite},
		{Name: "ecdsa", Family: provider.FamilySignature, Algorithms: []provider.Algorithm{provider.ECDSAP256}, Enabled: true, Run: runECDSASuite},
		{Name: "rsa", Family: provider.FamilySignature, Algorithms: []provider.Algorithm{provider.RSAPSSSHA256, provider.RSAPKCS1SHA256}, Enabled: true, Run: runRSASuite},

		// Key derivation and message authentication.
		{Name: "kdf", Family: provider.FamilyKDF, Algorithms: []provider.Algorithm{provider.HKDFSHA256, provider.PBKDF2SHA256, provider.Argon2id}, Enabled: true, Run: runKDFSuite},
		{Name: "mac", Family: provider.FamilyMAC, Algorithms: []provider.Algorithm{provider.HMACSHA256, provider.HMACSHA512}, Enabled: true, Run: runMACSuite},
	}
}

type config struct {
	override provider.Provider
	suite    string
	log      *logrus.Logger
}

// Option configures a conformance run.
type Option func(*config)

// WithProvider runs the suites against p instead of the process-wide
// current provider. The override is installed for the duration of the
// run and the previous selection restored afterwards.
func WithProvider(p provider.Provider) Option {
	return func(c *config) { c.override = p }
}

// WithSuite restricts the run to table entries with the given name.
func WithSuite(name string) Option {
	return func(c *config) { c.suite = name }
}

// WithLogger routes run logging to l instead of the standard logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) { c.log = l }
}

// RunAll executes the declared conformance table in order and returns the
// aggregated report.
//
// With a provider override, RunAll installs the override as the current
// provider for the duration of a named group and recurses without it.
// Without an override it runs against the current provider. Suites
// execute sequentially; the table is never run concurrently because the
// provider selection is shared state.
func RunAll(opts ...Option) (*Report, error) {
	cfg := config{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.override != nil {
		restore := provider.Swap(cfg.override)
		defer restore()

		rest := []Option{WithLogger(cfg.log)}
		if cfg.suite != "" {
			rest = append(rest, WithSuite(cfg.suite))
		}
		report, err := RunAll(rest...)
		if err != nil {
			return nil, err
		}
		report.Group = fmt.Sprintf("provider/%s", cfg.override.Name())
		return report, nil
	}

	p := provider.Current()
	if p == nil {
		return nil, fmt.Errorf("conformance: no provider installed")
	}

	log := cfg.log.WithFields(logrus.Fields{
		"package":  "conformance",
		"provider": p.Name(),
	})
	report := &Report{Provider: p.Name()}

	for _, suite := range Suites() {
		if cfg.suite != "" && suite.Name != cfg.suite {
			continue
		}
		if !suite.Enabled {
			log.WithField("suite", suite.Name).Debug("suite disabled, skipping")
			for _, alg := range suite.Algorithms {
				report.Cases = append(report.Cases, CaseResult{
					Suite:  suite.Name,
					Case:   string(alg),
					Status: StatusSkip,
					Detail: "suite disabled in declared table",
				})
			}
			continue
		}

		log.WithFields(logrus.Fields{
			"suite":  suite.Name,
			"family": string(suite.Family),
		}).Info("running conformance suite")

		report.SuiteOrder = append(report.SuiteOrder, suite.Name)
		runner := &Runner{prov: p, suite: suite.Name, algs: suite.Algorithms, log: log, report: report}
		suite.Run(runner)
	}

	pass, fail, skip := report.Counts()
	log.WithFields(logrus.Fields{
		"passed":  pass,
		"failed":  fail,
		"skipped": skip,
	}).Info("conformance run finished")
	return report, nil
}

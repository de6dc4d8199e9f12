// Package lsnmf: sentinel error set. All validation failures surface one of
// these via errors.Is; the optimization loop itself never errors — exhausting
// the iteration budget is a reportable outcome, not a failure.

package lsnmf

import "errors"

var (
	// ErrNilMatrix indicates that a nil input matrix was supplied.
	ErrNilMatrix = errors.New("lsnmf: nil matrix")

	// ErrNilSeeder indicates that no Seeder was supplied to Factorize.
	ErrNilSeeder = errors.New("lsnmf: nil seeder")

	// ErrBadRank indicates a non-positive factorization rank.
	ErrBadRank = errors.New("lsnmf: rank must be >= 1")

	// ErrNegativeInput indicates that V contains a negative entry; NMF is
	// defined only for nonnegative inputs.
	ErrNegativeInput = errors.New("lsnmf: input matrix has negative entries")

	// ErrShapeMismatch indicates that seeded factors do not match the
	// m×rank / rank×n shapes implied by V and the configured rank.
	ErrShapeMismatch = errors.New("lsnmf: seeded factor shape mismatch")

	// ErrBadInput indicates an invalid option value (NRun < 0, TestConv < 0,
	// MinResiduals < 0 or non-finite) or a non-positive subproblem budget.
	ErrBadInput = errors.New("lsnmf: invalid option value")
)

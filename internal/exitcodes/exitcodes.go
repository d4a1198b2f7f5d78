// Package exitcodes defines the exit codes used by ptsplit.
package exitcodes

import "ptsplit/internal/domain"

// Exit code constants used by ptsplit
// These constants define the exit codes that the application uses to indicate
// how a split ended:
//
// * Success (0): the run configuration was written, or the command succeeded
// * Failure (1): any error without a dedicated code
// * TestListMissing (2): the declared tests list does not exist
// * UnlocatedTest (3): a declared class has no backing file
// * AmbiguousNamespace (4): no candidate file declares the class namespace
// * CollectorError (5): PHPUnit failed to collect the suite
// * SuiteGeneration (6): the run configuration could not be built or written
const (
	Success            = 0
	Failure            = 1
	TestListMissing    = 2
	UnlocatedTest      = 3
	AmbiguousNamespace = 4
	CollectorError     = 5
	SuiteGeneration    = 6
)

// FromError maps an error returned by a command to its exit code
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case domain.IsCollectorError(err):
		return CollectorError
	case domain.IsTestListMissing(err):
		return TestListMissing
	case domain.IsUnlocatedTest(err):
		return UnlocatedTest
	case domain.IsAmbiguousNamespace(err):
		return AmbiguousNamespace
	case domain.IsSuiteGeneration(err):
		return SuiteGeneration
	default:
		return Failure
	}
}

package check

// Checker is implemented by anything that performs one check and
// reports its outcome.
//
// Implementations:
//   - endpoint.Verifier.Checker: one HTTP call against the base URL
type Checker interface {
	Run() Result
}

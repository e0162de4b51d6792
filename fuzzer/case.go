package fuzzer

// Strategy is the top-level policy selecting how a case's bytes are
// produced. Its value doubles as the display label stamped on each case.
type Strategy string

const (
	StrategyRandom     Strategy = "Random"
	StrategyMutation   Strategy = "Mutation"
	StrategyGeneration Strategy = "Generation"
	StrategyGrammar    Strategy = "Grammar"
	StrategyDictionary Strategy = "Dictionary"
)

// FuzzCase is one generated test input. Created exactly once by the
// session and immutable afterwards; the executor runs the target against
// Data and reports the outcome back.
type FuzzCase struct {
	// ID is unique and strictly increasing within a session, starting at 1.
	ID uint64

	// Data is the input handed to the target, 0..MaxCaseSize bytes.
	Data []byte

	// MutationType is the label of the strategy that produced the case.
	MutationType string

	// ParentIndex is the corpus index the case was derived from, or -1
	// when the case was not derived from a corpus seed.
	ParentIndex int
}

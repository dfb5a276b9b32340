package aerosort

// sorted is a strategy-selection signal, not an error: fail means "the
// caller should try the next merge strategy," never that anything went
// wrong. The merge attempt order (external -> internal basic -> block) is
// constructed so at least one strategy always succeeds.
type sorted bool

const (
	done sorted = true
	fail sorted = false
)

// blockID distinguishes the two provenances of a block during block merge:
// true for an A-block (from the left run), false for a B-block (from the
// right run). Ties during block selection favor A, which is what keeps the
// merge stable.
type blockID bool

const (
	blockA blockID = true
	blockB blockID = false
)

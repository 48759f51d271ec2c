package validation

import "errors"

var ErrSamePair = errors.New("pair_base and pair_quote must differ")
var ErrBadTargets = errors.New("targets must be positive")

package cart

import "errors"

var (
	ErrOfferAlreadyApplied  = errors.New("offer already applied")
	ErrUnsupportedAttribute = errors.New("attribute cannot be updated")
	ErrSystemSizeConflict   = errors.New("line already has a different system size")
)

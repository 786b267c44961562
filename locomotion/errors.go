package locomotion

import "errors"

var (
	ErrUnknownState    = errors.New("state is not registered")
	ErrMissingBody     = errors.New("controller requires a body")
	ErrMissingAnimator = errors.New("controller requires an animator")
	ErrMissingInput    = errors.New("controller requires an input source")
	ErrMissingWorld    = errors.New("controller requires a world")
)

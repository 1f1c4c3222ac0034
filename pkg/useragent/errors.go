package useragent

import "errors"

var (
	ErrInvalidField   = errors.New("invalid user agent field value")
	ErrInvalidPayload = errors.New("invalid user agent payload")
)

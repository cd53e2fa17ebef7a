package ai

import "errors"

// ErrEmptyCompletion indicates the completion service answered without any choices.
var ErrEmptyCompletion = errors.New("ai completion returned no choices")

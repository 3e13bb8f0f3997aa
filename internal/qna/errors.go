package qna

import "errors"

// Domain-specific errors for the qna package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
)

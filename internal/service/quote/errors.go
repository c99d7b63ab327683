package quote

import "errors"

var (
	ErrNotFound         = errors.New("quote not found")
	ErrQuoteExists      = errors.New("appointment already has a quote")
	ErrAlreadySent      = errors.New("quote was already sent to the patient")
	ErrNotSent          = errors.New("quote has not been sent to the patient")
	ErrAlreadyResponded = errors.New("quote already has a response")
	ErrCommentRequired  = errors.New("a comment is required to refuse a quote")
	ErrEmptyQuote       = errors.New("quote needs a clinic total or at least one assistance line")
	ErrNotYourQuote     = errors.New("quote does not belong to this patient")
)

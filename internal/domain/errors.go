package domain

import "errors"

var (
	// ErrUnknownPlatform is returned when a URL does not belong to any supported platform
	ErrUnknownPlatform = errors.New("url does not belong to a supported platform")

	// ErrExtractionFailed is returned when no extraction strategy produced a valid title
	ErrExtractionFailed = errors.New("unable to extract product info")

	// ErrFetchFailed is returned when a product page could not be retrieved
	ErrFetchFailed = errors.New("product page fetch failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrDuplicateMessage is returned when a message has already been processed
	ErrDuplicateMessage = errors.New("message already processed")

	// ErrOCRUnavailable is returned when no text recognition service is configured
	ErrOCRUnavailable = errors.New("text recognition service unavailable")

	// ErrOCRFailure is returned when the text recognition service request fails
	ErrOCRFailure = errors.New("text recognition request failed")
)

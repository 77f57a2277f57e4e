package domain

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// PageFetcher defines the interface for retrieving a product page as a
// structurally queryable document
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// URLResolver defines the interface for following short-link redirects.
// Resolve is best-effort: on failure it returns the input URL unchanged.
type URLResolver interface {
	Resolve(ctx context.Context, url string) string
}

// TextRecognizer defines the interface for extracting plain text from an
// image via an external OCR service
type TextRecognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}

// MessageDeduper tracks which messages have already been handled so
// near-simultaneous duplicate deliveries produce a single set of replies
type MessageDeduper interface {
	// MarkIfNew records the key and reports whether it had not been seen before
	MarkIfNew(key string) bool
}

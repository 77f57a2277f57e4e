package usecase

import (
	"context"
	"log"
	"time"

	"github.com/linklens/backend/internal/domain"
)

// ProcessorConfig holds orchestration limits for message processing
type ProcessorConfig struct {
	MaxURLsPerMessage int
	TimeBudget        time.Duration
	ReplyDelay        time.Duration
}

// Processor sequences link extraction, canonicalization, classification,
// fetching, field extraction, and formatting for one incoming message
type Processor struct {
	fetcher       domain.PageFetcher
	canonicalizer *Canonicalizer
	extractor     *Extractor
	deduper       domain.MessageDeduper
	recognizer    domain.TextRecognizer

	maxURLs    int
	timeBudget time.Duration
	replyDelay time.Duration

	// Injectable clock/sleep so orchestration tests run instantly
	now   func() time.Time
	sleep func(time.Duration)
}

// NewProcessor creates a message processor. The recognizer may be nil,
// in which case image-only messages are skipped.
func NewProcessor(
	fetcher domain.PageFetcher,
	resolver domain.URLResolver,
	deduper domain.MessageDeduper,
	recognizer domain.TextRecognizer,
	config ProcessorConfig,
) *Processor {
	if config.MaxURLsPerMessage <= 0 {
		config.MaxURLsPerMessage = 3
	}
	if config.TimeBudget <= 0 {
		config.TimeBudget = 2500 * time.Millisecond
	}
	if config.ReplyDelay <= 0 {
		config.ReplyDelay = 300 * time.Millisecond
	}

	return &Processor{
		fetcher:       fetcher,
		canonicalizer: NewCanonicalizer(resolver),
		extractor:     NewExtractor(),
		deduper:       deduper,
		recognizer:    recognizer,
		maxURLs:       config.MaxURLsPerMessage,
		timeBudget:    config.TimeBudget,
		replyDelay:    config.ReplyDelay,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

// ProcessMessage handles one incoming message end to end and returns the
// formatted replies, at most one per recognized product URL. It never
// returns an error: every per-URL failure is logged and processing moves
// on to the next URL.
func (p *Processor) ProcessMessage(ctx context.Context, msg domain.IncomingMessage) []domain.Reply {
	if msg.FromBot {
		return nil
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	if text == "" && len(msg.Image) > 0 && p.recognizer != nil {
		recognized, err := p.recognizer.RecognizeText(ctx, msg.Image)
		if err != nil {
			log.Printf("[PROCESS] OCR failed for message %s: %v", msg.Key(), err)
		} else if recognized != "" {
			text = recognized
			log.Printf("[PROCESS] Recognized %d chars of text from image (message %s)", len(recognized), msg.Key())
		}
	}

	urls := ExtractURLs(text)
	if len(urls) == 0 {
		return nil
	}

	if p.deduper != nil && !p.deduper.MarkIfNew(msg.Key()) {
		return nil
	}

	if len(urls) > p.maxURLs {
		urls = urls[:p.maxURLs]
	}

	start := p.now()
	var replies []domain.Reply

	for _, rawURL := range urls {
		reply, ok := p.processURL(ctx, rawURL, text, len(msg.Image) > 0)
		if !ok {
			continue
		}
		replies = append(replies, reply)
		if reply.Text == ExtractionFailedMessage {
			continue
		}

		// The budget is soft: it is only checked between URLs, so a
		// slow fetch can still overrun it.
		if p.now().Sub(start) > p.timeBudget {
			log.Printf("[PROCESS] Time budget exceeded for message %s, skipping remaining URLs", msg.Key())
			break
		}
		p.sleep(p.replyDelay)
	}

	return replies
}

// processURL runs the full pipeline for a single URL. The second return
// value is false when the URL should be skipped silently (unknown
// platform); a recognized platform whose extraction fails still yields a
// reply carrying the fixed failure line.
func (p *Processor) processURL(ctx context.Context, rawURL, messageText string, hasImage bool) (domain.Reply, bool) {
	cleanURL := p.canonicalizer.Canonicalize(ctx, rawURL)

	platform := Classify(cleanURL)
	if platform == domain.PlatformUnknown {
		return domain.Reply{}, false
	}

	log.Printf("[PROCESS] Processing %s product: %s", platform, cleanURL)

	doc, err := p.fetcher.Fetch(ctx, cleanURL)
	if err != nil {
		log.Printf("[PROCESS] Fetch failed for %s: %v", cleanURL, err)
		return domain.Reply{Text: ExtractionFailedMessage}, true
	}

	record := p.extractor.Extract(doc, platform, messageText)
	if record.Title == "" {
		log.Printf("[PROCESS] Extraction failed for %s", cleanURL)
		return domain.Reply{Text: ExtractionFailedMessage}, true
	}

	return domain.Reply{
		Text:        FormatReply(record, cleanURL, platform),
		AttachPhoto: platform == domain.PlatformMeesho && hasImage,
	}, true
}

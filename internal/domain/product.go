package domain

// PlatformID identifies a supported e-commerce platform
type PlatformID string

const (
	PlatformAmazon   PlatformID = "amazon"
	PlatformFlipkart PlatformID = "flipkart"
	PlatformMeesho   PlatformID = "meesho"
	PlatformMyntra   PlatformID = "myntra"
	PlatformAjio     PlatformID = "ajio"
	PlatformSnapdeal PlatformID = "snapdeal"
	PlatformWishlink PlatformID = "wishlink"
	PlatformUnknown  PlatformID = "unknown"
)

// DefaultPinCode is used when no valid delivery pin code is found in the message
const DefaultPinCode = "110001"

// ProductRecord represents extracted product information from an e-commerce page.
// A record with an empty Title is a failed extraction and must not be formatted.
type ProductRecord struct {
	Title    string   `json:"title"`
	Price    int      `json:"price,omitempty"` // rupees, 0 means not found
	Sizes    []string `json:"sizes,omitempty"` // uppercase, unique, at most 10
	PinCode  string   `json:"pinCode,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Quantity string   `json:"quantity,omitempty"`
	Brand    string   `json:"brand,omitempty"`
}

// IncomingMessage is the host-supplied message payload to process
type IncomingMessage struct {
	MessageID string `json:"messageId"`
	ChatID    string `json:"chatId"`
	Text      string `json:"text,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Image     []byte `json:"-"`
	FromBot   bool   `json:"fromBot,omitempty"`
}

// Key returns the deduplication key for the message
func (m IncomingMessage) Key() string {
	return m.ChatID + "_" + m.MessageID
}

// Reply is one formatted response produced for a processed URL
type Reply struct {
	Text        string `json:"text"`
	AttachPhoto bool   `json:"attachPhoto,omitempty"`
}

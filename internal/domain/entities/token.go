package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Token is a catalog entry for a meme token
type Token struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Ticker          string      `json:"ticker"`
	ImageURL        null.String `json:"image_url,omitempty"`
	Amount          float64     `json:"amount"`
	CreatorAddress  string      `json:"creator_address"`
	ContractAddress null.String `json:"contract_address,omitempty"`
	Website         null.String `json:"website,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ImageSourceKind discriminates the image payload of a create request
type ImageSourceKind int

const (
	ImageNone ImageSourceKind = iota
	ImageBinary
	ImageBase64
)

// ImageSource is the normalized image payload: raw bytes from a multipart
// upload, a base64 string from a JSON body, or nothing.
type ImageSource struct {
	Kind   ImageSourceKind
	Data   []byte
	Base64 string
}

func BinaryImage(data []byte) ImageSource {
	return ImageSource{Kind: ImageBinary, Data: data}
}

func Base64Image(s string) ImageSource {
	return ImageSource{Kind: ImageBase64, Base64: s}
}

// CreateTokenInput carries a normalized create request
type CreateTokenInput struct {
	Name            string
	Ticker          string
	Amount          float64
	CreatorAddress  string
	ContractAddress string
	Website         string
	ImageURL        string
	Image           ImageSource
}

// UpdateTokenInput carries a partial update; nil means the field was not
// present in the request and must stay untouched.
type UpdateTokenInput struct {
	Name            *string  `json:"name"`
	Ticker          *string  `json:"ticker"`
	ImageURL        *string  `json:"image_url"`
	Amount          *float64 `json:"amount"`
	CreatorAddress  *string  `json:"creator_address"`
	ContractAddress *string  `json:"contract_address"`
	Website         *string  `json:"website"`
}

// TokenFilter restricts and windows a token listing
type TokenFilter struct {
	CreatorAddress string
	Limit          int // rows to return, 0 means unbounded
	Offset         int
}

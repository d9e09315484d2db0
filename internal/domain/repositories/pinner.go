package repositories

import "context"

// PinMetadata names a pinned blob and tags it with searchable key-values
type PinMetadata struct {
	Name      string
	KeyValues map[string]string
}

// PinResult describes a blob pinned to content-addressed storage
type PinResult struct {
	Hash string
	URL  string
	Size int
}

// Pinner uploads a binary blob to content-addressed storage and returns a
// stable retrieval URL
type Pinner interface {
	Pin(ctx context.Context, data []byte, meta PinMetadata) (*PinResult, error)
}

package pinning

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	shell "github.com/ipfs/go-ipfs-api"
	"memedrop.backend/internal/domain/repositories"
)

// Client pins blobs to an IPFS node and builds gateway retrieval URLs
type Client struct {
	sh      *shell.Shell
	gateway string
}

// NewClient creates a pinning client talking to the given IPFS API address
// (e.g. "localhost:5001"). gateway is the public base used in returned URLs,
// e.g. "https://gateway.pinata.cloud".
func NewClient(apiAddr, gateway string) *Client {
	return &Client{
		sh:      shell.NewShell(apiAddr),
		gateway: strings.TrimRight(gateway, "/"),
	}
}

// Pin adds the blob to IPFS with CIDv1 and keeps it pinned. The shell does
// not thread a context through Add; callers bound the call with the node's
// own request timeout.
func (c *Client) Pin(_ context.Context, data []byte, meta repositories.PinMetadata) (*repositories.PinResult, error) {
	hash, err := c.sh.Add(bytes.NewReader(data), shell.Pin(true), shell.CidVersion(1))
	if err != nil {
		return nil, fmt.Errorf("ipfs add %q: %w", meta.Name, err)
	}

	return &repositories.PinResult{
		Hash: hash,
		URL:  c.gateway + "/ipfs/" + hash,
		Size: len(data),
	}, nil
}

// Package tokenizer counts tokens of text using a fixed tiktoken encoding.
package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	Count(input string) CountResult
}

const (
	// EncodingName is the only encoding the token counter supports.
	EncodingName = "cl100k_base"

	errorInitializeEncodingFormat = "initialize %s tokenizer: %w"
)

var installOfflineLoader sync.Once

// NewEncoder constructs the cl100k_base encoder. The BPE ranks are bundled
// with the binary, so construction never touches the network.
func NewEncoder() (*Encoder, error) {
	installOfflineLoader.Do(func() {
		tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())
	})
	encoding, encodingErr := tiktoken.GetEncoding(EncodingName)
	if encodingErr != nil {
		return nil, fmt.Errorf(errorInitializeEncodingFormat, EncodingName, encodingErr)
	}
	return &Encoder{encoding: encoding, name: EncodingName}, nil
}

var _ Counter = (*Encoder)(nil)

package tokenizer

import (
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// disallowAllSpecialTokens makes tiktoken reject special-token text instead
// of silently encoding it as ordinary characters.
var disallowAllSpecialTokens = []string{"all"}

// Encoder wraps a tiktoken encoding. It is safe for concurrent use.
type Encoder struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// Name returns the encoding name.
func (encoder *Encoder) Name() string {
	return encoder.name
}

// Count encodes input and reports the number of tokens. Failures, including
// text that contains a special token, are returned in the result.
func (encoder *Encoder) Count(input string) (result CountResult) {
	if encoder == nil || encoder.encoding == nil {
		return CountResult{Err: errors.New("nil tiktoken encoder")}
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			result = CountResult{Err: recoveredError(recovered)}
		}
	}()
	tokenIDs := encoder.encoding.Encode(input, nil, disallowAllSpecialTokens)
	return CountResult{Tokens: len(tokenIDs)}
}

func recoveredError(recovered any) error {
	if recoveredErr, isError := recovered.(error); isError {
		return recoveredErr
	}
	return fmt.Errorf("%v", recovered)
}

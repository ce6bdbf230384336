package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/presidential-roast/internal/types"
)

// commonHandleTerms are the vanity words that show up in try-hard handles.
var commonHandleTerms = []string{
	"crypto", "nft", "official", "real", "guru", "coach", "expert",
	"hustle", "alpha", "king", "queen", "boss", "ceo",
}

// extractTwitter fills handle-shape signals. The handle keeps its original
// casing so the generator can echo it back.
func extractTwitter(bundle *types.SignalBundle, text string) {
	handle := strings.TrimSpace(text)
	handle = strings.TrimPrefix(handle, "@")
	bundle.Handle = handle
	bundle.TextLength = len(handle)
	lower := strings.ToLower(handle)

	bundle.HasNumbers = strings.ContainsFunc(handle, unicode.IsDigit)
	bundle.HasUnderscores = strings.Contains(handle, "_")
	bundle.IsAllCaps = len(handle) > 3 && handle == strings.ToUpper(handle) &&
		strings.ContainsFunc(handle, unicode.IsLetter)
	bundle.CommonTerms = matchedTerms(lower, commonHandleTerms)
}

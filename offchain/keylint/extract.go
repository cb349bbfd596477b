package keylint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Abdullah1738/anchor-lint/offchain/solana"
)

// MinCandidateLen is the shortest value treated as a possible encoded key.
const MinCandidateLen = 32

// Whitespace around '=' follows Unicode: RE2's \s alone is ASCII-only and
// misses \v, NBSP and the other separators editors paste in.
const assignSpace = `[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]*`

// The key must also start on a word boundary, checked in Extract since
// RE2's \b only knows ASCII word characters.
var quotedAssignRe = regexp.MustCompile(`([A-Za-z0-9_\-.]+)` + assignSpace + `=` + assignSpace + `"([^"]+)"`)

var pathLikePrefixes = []string{"~", "/", "http"}

type Candidate struct {
	Key   string
	Value string
}

// Extract returns every `key = "value"` assignment in text, in order of
// occurrence. Repeated keys are reported each time.
func Extract(text string) []Candidate {
	var out []Candidate
	for pos := 0; pos < len(text); {
		loc := quotedAssignRe.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if !atWordBoundary(text, start) {
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + size
			continue
		}
		out = append(out, Candidate{
			Key:   text[pos+loc[2] : pos+loc[3]],
			Value: text[pos+loc[4] : pos+loc[5]],
		})
		pos += loc[1]
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func atWordBoundary(text string, i int) bool {
	prev := false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		prev = isWordRune(r)
	}
	next := false
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		next = isWordRune(r)
	}
	return prev != next
}

// IsCandidate reports whether value looks like a Base58 encoded key: not a
// path or URL, at least MinCandidateLen long, Base58 characters only.
func IsCandidate(value string) bool {
	for _, p := range pathLikePrefixes {
		if strings.HasPrefix(value, p) {
			return false
		}
	}
	return len(value) >= MinCandidateLen && solana.IsBase58(value)
}

func Candidates(text string) []Candidate {
	var out []Candidate
	for _, c := range Extract(text) {
		if IsCandidate(c.Value) {
			out = append(out, c)
		}
	}
	return out
}

package tokclass

import "regexp"

// Special token types. A token recognized here is exempt from the
// unsplit-punctuation checks and the suspicious-URL heuristic.
type specialType uint8

const (
	specialNone specialType = iota
	specialEmail
	specialURL
	specialHashtag
	specialHandle
	specialXML
	specialInfo
)

// domainSuffixes are the generic top-level domains the recognizers
// accept. The email recognizer also accepts any two lowercase letters
// (country codes); the bare-domain URL recognizer accepts only these.
const domainSuffixes = `cat|com|edu|gov|info|int|mil|net|org|biz`

// fileExtensions are common extensions for the filename recognizers.
const fileExtensions = `cgi|doc|docx|gif|htm|html|jpeg|jpg|mp3|mp4|pdf|php|png|ppt|txt|xls|xml|zip`

var (
	emailRe = regexp.MustCompile(
		`^[A-Za-z0-9][-._A-Za-z0-9]*@[A-Za-z0-9][-A-Za-z0-9]*(?:\.[-A-Za-z0-9]+)*\.(?:` +
			domainSuffixes + `|[a-z][a-z])$`)
	urlSchemeRe = regexp.MustCompile(`^(?:https?|ftp)://\S+$`)
	urlWWWRe    = regexp.MustCompile(`^www\.[-A-Za-z0-9]+(?:\.[-A-Za-z0-9]+)+(?:/\S*)?$`)
	urlDomainRe = regexp.MustCompile(
		`^[-A-Za-z0-9]+(?:\.[-A-Za-z0-9]+)*\.(?:` + domainSuffixes + `)(?:/\S*)?$`)
	hashtagRe = regexp.MustCompile(`^#[A-Za-z0-9_]+$`)
	handleRe  = regexp.MustCompile(`^@[A-Za-z0-9_]+$`)
	xmlTagRe  = regexp.MustCompile(`^</?[A-Za-z][-._:A-Za-z0-9]*/?>$`)
	xmlEntRe  = regexp.MustCompile(`^&(?:#[0-9]+|#x[0-9a-fA-F]+|[A-Za-z]+);$`)
	// ::marker tokens are handled by the benign-punctuation rules, not
	// here, so they still register under their own category.
	infoRe = regexp.MustCompile(`^\[[A-Z][A-Z_]*\]$|^<<[a-z]+>>$`)

	filenameRe = regexp.MustCompile(`^[-._A-Za-z0-9]+\.(?:` + fileExtensions + `)$`)

	suspiciousURLRe  = regexp.MustCompile(`^(?:www\.|https?:)\S`)
	embeddedDomainRe = regexp.MustCompile(`\.(?:com|org)\b`)
)

// specialTokenType classifies a token into one of the special types,
// or specialNone. Email is checked before URL so user@host.org never
// reads as a URL.
func specialTokenType(token string) specialType {
	switch {
	case emailRe.MatchString(token):
		return specialEmail
	case urlSchemeRe.MatchString(token), urlWWWRe.MatchString(token), urlDomainRe.MatchString(token):
		return specialURL
	case hashtagRe.MatchString(token):
		return specialHashtag
	case handleRe.MatchString(token):
		return specialHandle
	case xmlTagRe.MatchString(token), xmlEntRe.MatchString(token):
		return specialXML
	case infoRe.MatchString(token):
		return specialInfo
	}
	return specialNone
}

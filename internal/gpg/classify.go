// Package gpg classifies the diagnostic stream GnuPG writes while pass
// decrypts a store entry. The stream mixes human-readable messages,
// machine-readable status markers, and IPC debug traces, repeated once per
// recipient key tried; classification reduces it to the lines worth showing
// plus a single 16-bit error code.
package gpg

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// chanErrPat matches low-level agent channel errors on debug lines,
	// e.g. "gpg: DBG: chan_7 -> ERR 67108881 ...".
	chanErrPat = regexp.MustCompile(`gpg: DBG: chan_\d+ (?:<-|->) ERR (\d+)`)
	// statusPat matches status marker lines emitted with --status-fd=2.
	statusPat = regexp.MustCompile(`^\[GNUPG:\]`)
	// errorCodePat extracts the code from a pkdecrypt failure marker.
	errorCodePat = regexp.MustCompile(`(?:ERROR pkdecrypt_failed) (\d+)`)
)

const (
	encTo           = "ENC_TO"
	beginDecryption = "BEGIN_DECRYPTION"
	endDecryption   = "END_DECRYPTION"
	noSecKey        = "NO_SECKEY"

	debugPrefix = "gpg: DBG:"

	// codeNoSecretKey is GPG_ERR_NO_SECKEY from libgpg-error's err-codes.h.
	codeNoSecretKey = 17
)

// classifier is the per-pass state: the lines retained so far for the
// current decryption attempt, and the last recognized error code.
type classifier struct {
	preserved []string
	code      int
}

// A rule inspects one line, reporting whether it consumed the line and
// whether classification should stop. Rules are tried in order per line;
// the first rule that consumes a line wins, and unconsumed lines are
// preserved verbatim.
type rule func(c *classifier, line string) (consumed, stop bool)

// rules in precedence order: channel errors, then status markers, then
// continuation lines.
var rules = []rule{
	channelError,
	statusMarker,
	continuation,
}

// channelError records the 16-bit code from an agent channel error without
// touching the preserved lines.
func channelError(c *classifier, line string) (bool, bool) {
	m := chanErrPat.FindStringSubmatch(line)
	if m == nil {
		return false, false
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		c.code = n & 0xFFFF
	}
	return true, false
}

// statusMarker handles the structured "[GNUPG:] KEYWORD ..." lines that
// delimit decryption attempts and carry explicit failure codes. Marker lines
// themselves are never preserved.
func statusMarker(c *classifier, line string) (bool, bool) {
	if !statusPat.MatchString(line) {
		return false, false
	}
	switch m := errorCodePat.FindStringSubmatch(line); {
	case m != nil:
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.code = n & 0xFFFF
		}
	case strings.Contains(line, noSecKey):
		c.code = codeNoSecretKey
	case strings.Contains(line, encTo):
		// A new per-recipient attempt begins; everything retained so far
		// belongs to a superseded attempt.
		c.preserved = c.preserved[:0]
	case strings.Contains(line, beginDecryption):
		// Only the most recently retained line pertains to the attempt
		// now beginning.
		if n := len(c.preserved); n > 1 {
			c.preserved = c.preserved[n-1:]
		}
	case strings.Contains(line, endDecryption):
		return true, true
	}
	return true, false
}

// continuation folds gpg's two-space-indented follow-up lines into the
// previously retained line.
func continuation(c *classifier, line string) (bool, bool) {
	if len(c.preserved) == 0 || !strings.HasPrefix(line, "  ") {
		return false, false
	}
	c.preserved[len(c.preserved)-1] += "\n" + line
	return true, false
}

// Classify runs the rule list over the diagnostic stream and returns the
// cleaned log plus the last recognized error code, masked to gpg's 16-bit
// code space; 0 means no recognized failure. Classification is a pure
// function of its input and never fails.
func Classify(stderr string) (string, int) {
	c := &classifier{}

lines:
	// A single trailing newline delimits the last line rather than opening
	// an empty one.
	for _, line := range strings.Split(strings.TrimSuffix(stderr, "\n"), "\n") {
		for _, r := range rules {
			consumed, stop := r(c, line)
			if stop {
				break lines
			}
			if consumed {
				continue lines
			}
		}
		c.preserved = append(c.preserved, line)
	}

	// Drop any raw debug traces that slipped past the rules.
	kept := c.preserved[:0]
	for _, line := range c.preserved {
		if strings.HasPrefix(line, debugPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), c.code
}

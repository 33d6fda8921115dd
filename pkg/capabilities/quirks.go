package capabilities

import (
	"strconv"
	"strings"

	"github.com/xphoniex/zls/pkg/protocol"
)

// quirk is one entry in the client-quirk registry: a name predicate, an
// optional semver predicate, and an override applied to the snapshot
// after the generic negotiation rules have run.
type quirk struct {
	name      string
	minSemver string // "" means any version
	override  func(*Snapshot)
}

// quirks is the static registry. Entries are illustrative of the override
// shapes this core needs to support (forcing fixAll on, tuning max detail
// length, gating on semver) rather than an attempt to model every real
// editor.
var quirks = []quirk{
	{
		// An editor that always honors source.fixAll edits even when it
		// didn't advertise codeActionLiteralSupport for that kind.
		name: "eclipse.jdt.ls",
		override: func(s *Snapshot) {
			s.CodeActionFixAll = true
		},
	},
	{
		// A client whose completion popup truncates long detail strings
		// poorly; keep them short regardless of config.
		name: "sublimetext",
		override: func(s *Snapshot) {
			s.MaxDetailLength = 256
		},
	},
}

// belowSemverQuirks pairs a client name with a version floor below which an
// override kicks in (the inverse sense of quirks above, for regressions
// fixed by a later release).
var belowSemverQuirks = []quirk{
	{
		// Markdown hover rendering was unreliable in this client before
		// 1.4.0, so hover content falls back to plaintext there.
		name:      "some-editor",
		minSemver: "1.4.0",
		override: func(s *Snapshot) {
			s.HoverMarkdown = false
		},
	},
}

func applyQuirks(info protocol.ClientInfo, snap *Snapshot) {
	for _, q := range quirks {
		if q.name == info.Name {
			q.override(snap)
		}
	}

	for _, q := range belowSemverQuirks {
		if q.name == info.Name && semverLess(info.Version, q.minSemver) {
			q.override(snap)
		}
	}
}

// semverLess does a minimal major.minor.patch comparison; it does not
// handle pre-release/build metadata, which none of the quirk entries need.
func semverLess(a, b string) bool {
	pa, pb := parseSemver(a), parseSemver(b)
	for i := 0; i < 3; i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return false
}

func parseSemver(v string) [3]int {
	var out [3]int
	parts := strings.SplitN(strings.TrimPrefix(v, "v"), ".", 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return [3]int{}
		}
		out[i] = n
	}
	return out
}

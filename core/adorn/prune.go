package adorn

import (
	"strings"

	"github.com/FocuswithJustin/adorner/core/xml"
)

// Word attribute names.
const (
	attrTok  = "tok"
	attrSpe  = "spe"
	attrPos  = "pos"
	attrLem  = "lem"
	attrReg  = "reg"
	attrEOS  = "eos"
	attrPart = "part"
	attrPath = "p"
)

// Prune removes word attributes whose values can be derived from the rest:
// tok from the word text, spe from tok, and lem, pos and reg from spe.
//
// Every comparison uses the value the attribute would take if it were
// missing, the same derivation used when defaults are filled in, so a
// pruned set prunes to itself.
func Prune(attrs xml.Attributes, text string, mode PruneMode) xml.Attributes {
	if !mode.Enabled() {
		return attrs
	}

	tok := valueOr(attrs, attrTok, text)
	spe := valueOr(attrs, attrSpe, tok)

	token := mode.RedundantOnly || mode.Token
	var drop []string

	if mode.RedundantOnly || mode.EOS {
		if eos, ok := attrs.Get(attrEOS); ok && !truthy(eos) {
			drop = append(drop, attrEOS)
		}
	}
	if token {
		if equalIfPresent(attrs, attrSpe, tok) {
			drop = append(drop, attrSpe)
		}
		for _, name := range []string{attrLem, attrPos, attrReg} {
			if equalIfPresent(attrs, name, spe) {
				drop = append(drop, name)
			}
		}
	}
	// The redundant-only and part axes are independent settings that happen
	// to share a predicate.
	if mode.RedundantOnly || mode.Part {
		if equalIfPresent(attrs, attrPart, string(PartNone)) {
			drop = append(drop, attrPart)
		}
	}
	if token && equalIfPresent(attrs, attrTok, text) {
		drop = append(drop, attrTok)
	}

	if len(drop) == 0 {
		return attrs
	}
	out := attrs.Clone()
	for _, name := range drop {
		out.Delete(name)
	}
	return out
}

func valueOr(attrs xml.Attributes, name, fallback string) string {
	if v, ok := attrs.Get(name); ok {
		return v
	}
	return fallback
}

func equalIfPresent(attrs xml.Attributes, name, want string) bool {
	v, ok := attrs.Get(name)
	return ok && v == want
}

// truthy reports whether an eos value marks a sentence end.
func truthy(v string) bool {
	v = strings.TrimSpace(v)
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
}

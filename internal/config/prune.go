package config

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/adorner/core/adorn"
	aerrors "github.com/FocuswithJustin/adorner/core/errors"
)

// pruneGrammar is the participle grammar for attribute pruning modes.
// Examples: "all", "token", "part+eos", "token, part"
type pruneGrammar struct {
	Modes []string `parser:"@Ident ( (\",\" | \"+\") @Ident )*"`
}

var pruneLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[,+]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var pruneParser = participle.MustBuild[pruneGrammar](
	participle.Lexer(pruneLexer),
	participle.Elide("Whitespace"),
)

// ParsePruneMode parses a pruning mode. An empty string and "none" disable
// pruning; "all" removes every redundant attribute; "token", "part" and
// "eos" select single axes and may be combined with "," or "+".
func ParsePruneMode(s string) (adorn.PruneMode, error) {
	var mode adorn.PruneMode
	s = strings.TrimSpace(s)
	if s == "" {
		return mode, nil
	}

	parsed, err := pruneParser.ParseString("", s)
	if err != nil {
		return mode, &aerrors.ParseError{Format: "prune mode", Message: err.Error(), Err: aerrors.ErrInvalidInput}
	}

	for _, m := range parsed.Modes {
		switch strings.ToLower(m) {
		case "none":
		case "all":
			mode.RedundantOnly = true
		case "token":
			mode.Token = true
		case "part":
			mode.Part = true
		case "eos":
			mode.EOS = true
		default:
			return adorn.PruneMode{}, &aerrors.ValidationError{Field: "prune", Value: m, Message: "unknown prune mode " + m}
		}
	}
	return mode, nil
}

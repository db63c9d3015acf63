// Package config loads annotation settings from YAML or TOML files.
//
// A file only needs the settings it changes; everything else keeps the
// value from adorn.DefaultConfig.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/adorner/core/adorn"
	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/postag"
)

// File is the on-disk configuration. Pointer fields distinguish "not set"
// from a zero value.
type File struct {
	BaseName         string `yaml:"base_name" toml:"base_name"`
	IDAttribute      string `yaml:"id_attribute" toml:"id_attribute"`
	Scheme           string `yaml:"scheme" toml:"scheme"`
	Spacing          *int   `yaml:"spacing" toml:"spacing"`
	MinIDWidth       *int   `yaml:"min_id_width" toml:"min_id_width"`
	LabelAttribute   string `yaml:"label_attribute" toml:"label_attribute"`
	OrdinalAttribute string `yaml:"ordinal_attribute" toml:"ordinal_attribute"`

	DefaultLanguage string            `yaml:"default_language" toml:"default_language"`
	LanguageTags    map[string]string `yaml:"language_tags" toml:"language_tags"`
	ForeignTag      string            `yaml:"foreign_tag" toml:"foreign_tag"`
	SpecialDivTypes []string          `yaml:"special_div_types" toml:"special_div_types"`
	UnknownTag      string            `yaml:"unknown_tag" toml:"unknown_tag"`

	HardTags            []string `yaml:"hard_tags" toml:"hard_tags"`
	JumpTags            []string `yaml:"jump_tags" toml:"jump_tags"`
	SoftTags            []string `yaml:"soft_tags" toml:"soft_tags"`
	HardTagsEndSentence *bool    `yaml:"hard_tags_end_sentence" toml:"hard_tags_end_sentence"`
	JumpTagsEndSentence *bool    `yaml:"jump_tags_end_sentence" toml:"jump_tags_end_sentence"`

	Prune              string   `yaml:"prune" toml:"prune"`
	SentenceBoundary   string   `yaml:"sentence_boundary" toml:"sentence_boundary"`
	SentenceMarkerTags []string `yaml:"sentence_marker_tags" toml:"sentence_marker_tags"`

	OutputWhitespace  *bool   `yaml:"output_whitespace" toml:"output_whitespace"`
	WhitespaceElement *string `yaml:"whitespace_element" toml:"whitespace_element"`

	PseudoPageSize       *int     `yaml:"pseudo_page_size" toml:"pseudo_page_size"`
	PseudoPageContainers []string `yaml:"pseudo_page_containers" toml:"pseudo_page_containers"`

	// Tags replaces the part-of-speech class sets.
	Tags *postag.Sets `yaml:"tags" toml:"tags"`

	Log     LogSection     `yaml:"log" toml:"log"`
	Records RecordsSection `yaml:"records" toml:"records"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// RecordsSection configures the word record store.
type RecordsSection struct {
	// Path is the SQLite database file. Empty disables the store.
	Path string `yaml:"path" toml:"path"`
}

// Load reads a configuration file. The format follows the extension:
// .yaml or .yml for YAML, .toml for TOML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, aerrors.NewIO("read", path, err)
	}
	f, err := Decode(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		var perr *aerrors.ParseError
		if aerrors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Decode parses configuration data in the named format ("yaml", "yml" or
// "toml").
func Decode(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, &aerrors.ParseError{Format: "YAML", Message: err.Error(), Err: err}
		}
	case "toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, &aerrors.ParseError{Format: "TOML", Message: err.Error(), Err: err}
		}
	default:
		return nil, aerrors.NewUnsupported("config format "+format, "use .yaml, .yml or .toml")
	}
	return &f, nil
}

// Apply overlays the settings present in f onto cfg and validates the result.
func (f *File) Apply(cfg *adorn.Config) error {
	setString(&cfg.BaseName, f.BaseName)
	setString(&cfg.IDAttribute, f.IDAttribute)
	if f.Scheme != "" {
		s, err := adorn.ParseScheme(f.Scheme)
		if err != nil {
			return err
		}
		cfg.Scheme = s
	}
	setInt(&cfg.Spacing, f.Spacing)
	setInt(&cfg.MinIDWidth, f.MinIDWidth)
	setString(&cfg.LabelAttribute, f.LabelAttribute)
	setString(&cfg.OrdinalAttribute, f.OrdinalAttribute)

	setString(&cfg.DefaultLanguage, f.DefaultLanguage)
	if f.LanguageTags != nil {
		cfg.LanguageTags = f.LanguageTags
	}
	setString(&cfg.ForeignTag, f.ForeignTag)
	setList(&cfg.SpecialDivTypes, f.SpecialDivTypes)
	setString(&cfg.UnknownTag, f.UnknownTag)

	setList(&cfg.HardTags, f.HardTags)
	setList(&cfg.JumpTags, f.JumpTags)
	setList(&cfg.SoftTags, f.SoftTags)
	setBool(&cfg.HardTagsEndSentence, f.HardTagsEndSentence)
	setBool(&cfg.JumpTagsEndSentence, f.JumpTagsEndSentence)

	if f.Prune != "" {
		mode, err := ParsePruneMode(f.Prune)
		if err != nil {
			return err
		}
		cfg.Prune = mode
	}
	if f.SentenceBoundary != "" {
		b, err := ParseSentenceBoundary(f.SentenceBoundary)
		if err != nil {
			return err
		}
		cfg.SentenceBoundary = b
	}
	setList(&cfg.SentenceMarkerTags, f.SentenceMarkerTags)

	setBool(&cfg.OutputWhitespace, f.OutputWhitespace)
	if f.WhitespaceElement != nil {
		cfg.WhitespaceElement = *f.WhitespaceElement
	}
	setInt(&cfg.PseudoPageSize, f.PseudoPageSize)
	setList(&cfg.PseudoPageContainers, f.PseudoPageContainers)

	return cfg.Validate()
}

// TagClassifier returns the classifier for the configured tag sets, or
// the NUPOS default.
func (f *File) TagClassifier() *postag.Classifier {
	if f == nil || f.Tags == nil {
		return postag.Default()
	}
	return postag.New(*f.Tags)
}

// ParseSentenceBoundary maps "attribute" or "element" to a boundary mode.
func ParseSentenceBoundary(s string) (adorn.SentenceBoundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attribute":
		return adorn.BoundaryAttribute, nil
	case "element":
		return adorn.BoundaryElement, nil
	}
	return 0, &aerrors.ValidationError{Field: "sentence_boundary", Value: s, Message: "must be attribute or element"}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v []string) {
	if v != nil {
		*dst = v
	}
}

// Package locale negotiates the caller's language and formats currency and dates for it.
package locale

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/id_ID"
	"github.com/go-playground/locales/ja_JP"
	"github.com/go-playground/locales/ru_RU"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

const (
	DefaultLocale  = "en-US"
	JapaneseLocale = "ja-JP"
)

var available = map[string]func() locales.Translator{
	"en-US": en_US.New,
	"ja-JP": ja_JP.New,
	"ru-RU": ru_RU.New,
	"id-ID": id_ID.New,
}

// Resolver picks one of the supported locales for a request and hands out Formatters.
type Resolver struct {
	uni       *ut.UniversalTranslator
	matcher   language.Matcher
	supported []string
}

// NewResolver builds a resolver whose fallback is def. def is added to supported when absent.
func NewResolver(def string, supported []string) (*Resolver, error) {
	if def == "" {
		def = DefaultLocale
	}

	ordered := []string{def}
	for _, s := range supported {
		if s != def {
			ordered = append(ordered, s)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	translators := make([]locales.Translator, 0, len(ordered))
	for _, name := range ordered {
		newTrans, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("unsupported locale %q", name)
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", name, err)
		}
		tags = append(tags, tag)
		translators = append(translators, newTrans())
	}

	return &Resolver{
		uni:       ut.New(translators[0], translators...),
		matcher:   language.NewMatcher(tags),
		supported: ordered,
	}, nil
}

// Default returns the fallback locale.
func (r *Resolver) Default() string {
	return r.supported[0]
}

// Resolve returns the supported locale best matching the first usable candidate.
// Candidates are tried in order; each may be a single tag ("ja-JP", "ja_JP") or a full
// Accept-Language value. With no usable candidate the default is returned.
func (r *Resolver) Resolve(candidates ...string) string {
	for _, c := range candidates {
		c = strings.ReplaceAll(strings.TrimSpace(c), "_", "-")
		if c == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(c)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := r.matcher.Match(tags...)
		if conf == language.No {
			continue
		}
		return r.supported[idx]
	}
	return r.Default()
}

// Formatter returns a formatter bound to name. Unknown names use the default locale.
func (r *Resolver) Formatter(name string) *Formatter {
	trans, found := r.uni.FindTranslator(underscore(name))
	if !found {
		name = r.Default()
	}
	return &Formatter{
		locale: name,
		trans:  trans,
		enUS:   en_US.New(),
	}
}

func underscore(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

package syntax

import (
	"context"
	"log/slog"

	"github.com/albertocavalcante/go-esx/edition"
)

// Syntax is an ordered list of descriptors.
type Syntax []string

// BrowserslistPrefix marks a target token as a raw browserslist query.
const BrowserslistPrefix = "browserslist:"

// FallbackTarget is the newest edition the bundler's target option
// accepts. Newer editions resolve to it.
const FallbackTarget = edition.ES2022

// Targets resolves each descriptor to a bundler target token, in order.
func (t *Table) Targets(s Syntax) ([]string, error) {
	tokens := make([]string, 0, len(s))
	for _, item := range s {
		token, err := t.target(item)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (t *Table) target(item string) (string, error) {
	if !edition.IsEditionLike(item) {
		t.log().Debug("syntax passed through as query", slog.String("syntax", item))
		return BrowserslistPrefix + item, nil
	}

	e := edition.Normalize(item)
	if _, ok := t.entries[e]; !ok {
		return "", &UnsupportedSyntaxError{Syntax: item}
	}
	if e.IsLatest() {
		t.log().Debug("syntax newer than bundler target, using fallback",
			slog.String("syntax", item),
			slog.String("target", string(FallbackTarget)))
		return string(FallbackTarget), nil
	}
	return string(e), nil
}

// Browserslist resolves each descriptor to browserslist queries and
// flattens them in input order. target only affects latest editions.
func (t *Table) Browserslist(s Syntax, target Target) ([]string, error) {
	var queries []string
	for _, item := range s {
		q, err := t.browserslist(item, target)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q...)
	}
	return queries, nil
}

func (t *Table) browserslist(item string, target Target) ([]string, error) {
	if !edition.IsEditionLike(item) {
		return []string{item}, nil
	}

	e := edition.Normalize(item)
	entry, ok := t.entries[e]
	if !ok {
		return nil, &UnsupportedSyntaxError{Syntax: item}
	}

	var queries []string
	switch entry := entry.(type) {
	case LiteralEntry:
		queries = append(queries, entry.Queries...)
	case RequirementEntry:
		queries = entry.Requirement.Queries()
	case LatestEntry:
		queries = entry.Resolve(target)
	}

	if l := t.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("syntax resolved to browserslist",
			slog.String("syntax", item),
			slog.String("target", string(target)),
			slog.Int("queries", len(queries)))
	}
	return queries, nil
}

// ToTargets resolves s with [DefaultTable].
func ToTargets(s Syntax) ([]string, error) {
	t, err := DefaultTable()
	if err != nil {
		return nil, err
	}
	return t.Targets(s)
}

// ToBrowserslist resolves s with [DefaultTable].
func ToBrowserslist(s Syntax, target Target) ([]string, error) {
	t, err := DefaultTable()
	if err != nil {
		return nil, err
	}
	return t.Browserslist(s, target)
}

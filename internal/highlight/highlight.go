// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package highlight classifies substrings of a SQL string for terminal
// display. It is a lexical pass, not a SQL parse: four token categories are
// matched independently over the whole input, overlaps are resolved by a
// left-to-right greedy sweep, and the string is reconstructed as an ordered
// sequence of plain and typed segments. Concatenating the segment texts
// always reproduces the input exactly.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// Kind is a token category.
type Kind string

const (
	KindKeyword Kind = "keyword"
	KindString  Kind = "string"
	KindComment Kind = "comment"
	KindNumber  Kind = "number"
)

// Token is a classified substring. End is exclusive.
type Token struct {
	Start int
	End   int
	Kind  Kind
	Text  string
}

// Segment is one output unit. Kind is empty for plain text.
type Segment struct {
	Text string
	Kind Kind
}

// keywords is the fixed vocabulary, matched case-insensitively as whole
// words. Multi-word entries come first so the alternation prefers them.
var keywords = []string{
	"GROUP BY", "ORDER BY",
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER",
	"ON", "AND", "OR", "NOT", "IN", "EXISTS", "HAVING", "LIMIT", "OFFSET",
	"AS", "DISTINCT", "COUNT", "SUM", "AVG", "MAX", "MIN", "ROUND", "NULL",
	"IS", "DESC", "ASC", "UNION", "INSERT", "UPDATE", "DELETE", "CREATE",
	"DROP", "ALTER", "TABLE", "INDEX", "PRIMARY", "KEY", "FOREIGN",
	"REFERENCES", "CASCADE", "SET", "VALUES",
}

var (
	reKeyword = regexp.MustCompile(`(?i)\b(?:` + strings.Join(keywords, "|") + `)\b`)
	// String literals end at the next quote; embedded escaped quotes are not
	// supported. An unterminated quote simply produces no match.
	reString  = regexp.MustCompile(`'[^']*'`)
	reComment = regexp.MustCompile(`--[^\n]*`)
	reNumber  = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
)

var categories = []struct {
	re   *regexp.Regexp
	kind Kind
}{
	{reKeyword, KindKeyword},
	{reString, KindString},
	{reComment, KindComment},
	{reNumber, KindNumber},
}

// Highlight scans sql and returns its ordered segments. It is total over all
// inputs; an empty string yields nil.
func Highlight(sql string) []Segment {
	if sql == "" {
		return nil
	}
	kept := resolve(scan(sql))

	var segs []Segment
	pos := 0
	for _, t := range kept {
		if t.Start > pos {
			segs = append(segs, Segment{Text: sql[pos:t.Start]})
		}
		segs = append(segs, Segment{Text: t.Text, Kind: t.Kind})
		pos = t.End
	}
	if pos < len(sql) {
		segs = append(segs, Segment{Text: sql[pos:]})
	}
	return segs
}

// scan finds every match of every category independently. The same character
// range can appear under more than one category at this stage.
func scan(sql string) []Token {
	var tokens []Token
	for _, c := range categories {
		for _, loc := range c.re.FindAllStringIndex(sql, -1) {
			tokens = append(tokens, Token{
				Start: loc[0],
				End:   loc[1],
				Kind:  c.kind,
				Text:  sql[loc[0]:loc[1]],
			})
		}
	}
	return tokens
}

// resolve sorts tokens by start position and keeps a token only if it begins
// at or after the end of the last kept one. Position decides, not category:
// whichever match sorts first wins, and anything starting inside a kept span
// is discarded entirely.
func resolve(tokens []Token) []Token {
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })
	kept := tokens[:0]
	lastEnd := 0
	for _, t := range tokens {
		if t.Start < lastEnd {
			continue
		}
		kept = append(kept, t)
		lastEnd = t.End
	}
	return kept
}

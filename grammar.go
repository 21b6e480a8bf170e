package turtls

import (
	"strings"
)

// Rules maps a single-character token to its replacement string.
// Tokens with no entry are left unchanged during expansion.
type Rules map[byte]string

// ParseRules parses a whitespace-separated string of alternating
// token/replacement pairs, e.g. "F F+G-F-G+F G GG" means F -> F+G-F-G+F
// and G -> GG. Tokens longer than one character are skipped since they
// can never match a character of the string being expanded. A trailing
// token with no replacement is dropped.
func ParseRules(s string) Rules {
	fields := strings.Fields(s)
	rules := make(Rules, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key := fields[i]
		if len(key) != 1 {
			continue
		}
		rules[key[0]] = fields[i+1]
	}
	return rules
}

func (r Rules) String() string {
	var sb strings.Builder
	first := true
	for key, value := range r {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteByte(key)
		sb.WriteByte(' ')
		sb.WriteString(value)
	}
	return sb.String()
}

// ruleTable is a dense form of Rules for the expansion hot loop.
type ruleTable struct {
	replacement [256]string
	present     [256]bool
}

func (r Rules) compile() *ruleTable {
	var table ruleTable
	for key, value := range r {
		table.replacement[key] = value
		table.present[key] = true
	}
	return &table
}

// Expand rewrites axiom level times, replacing every character with its
// rule replacement or itself when no rule exists. Level 0 returns the
// axiom unchanged. Output length can grow exponentially with level;
// callers needing bounded work should cap level or set MaxChars on the
// interpreter run.
func Expand(axiom string, rules Rules, level int) string {
	if level <= 0 || len(rules) == 0 {
		return axiom
	}
	table := rules.compile()
	pool := newBufferPool(2 * len(axiom))
	pool.AppendString(axiom)
	for i := 0; i < level; i++ {
		expandOnce(pool, table)
	}
	return string(pool.GetActive().Bytes())
}

// ExpandLevels returns every generation from 0 to level inclusive.
func ExpandLevels(axiom string, rules Rules, level int) []string {
	if level < 0 {
		level = 0
	}
	levels := make([]string, 0, level+1)
	levels = append(levels, axiom)
	table := rules.compile()
	pool := newBufferPool(2 * len(axiom))
	pool.AppendString(axiom)
	for i := 0; i < level; i++ {
		expandOnce(pool, table)
		levels = append(levels, string(pool.GetActive().Bytes()))
	}
	return levels
}

func expandOnce(pool *bufferPool, table *ruleTable) {
	prev := pool.GetActive()
	pool.Swap()
	pool.ResetWritingHead()
	for _, c := range prev.Bytes() {
		if table.present[c] {
			pool.AppendString(table.replacement[c])
		} else {
			pool.Append(c)
		}
	}
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package generator

import (
	"math"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// numberCacheSize bounds the shortest-round-trip number cache. 4096 covers
// every distinct literal in a source file several times over before a
// single-pass generator run would ever evict a hot entry.
const numberCacheSize = 4096

// numberCache memoizes strconv.AppendFloat('g', -1, 64) results keyed by
// the float64's bit pattern, since the same numeric literal (e.g. loop
// bounds, flags) commonly reprints many times within one generator pass
// and across a driver's repeated passes over the same tree.
var numberCache *lru.Cache[uint64, string]

func init() {
	c, err := lru.New[uint64, string](numberCacheSize)
	if err != nil {
		panic(err)
	}
	numberCache = c
}

// formatNumber renders v the way `Number.prototype.toString` would,
// starting from Go's shortest-round-trip decimal (strconv's 'g' verb with
// precision -1 is exactly that algorithm) and then closing the two gaps
// between Go's exponent notation and JS's: JS never zero-pads the
// exponent digit count, where Go always emits at least two.
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}

	bits := math.Float64bits(v)
	if s, ok := numberCache.Get(bits); ok {
		return s
	}

	s := strconv.AppendFloat(nil, v, 'g', -1, 64)
	out := trimExponentPadding(string(s))
	numberCache.Add(bits, out)
	return out
}

// trimExponentPadding strips the zero-padding Go's formatter adds to the
// exponent (e.g. "1e-07" -> "1e-7"), which JS's own number-to-string
// algorithm never produces.
func trimExponentPadding(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i+1], s[i+1:]
	sign := byte('+')
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign = exp[0]
		exp = exp[1:]
	}
	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}
	return mantissa + string(sign) + exp
}

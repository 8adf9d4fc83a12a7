// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - concrete values that can be stored in an avl.Tree
package item

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// names of the value kinds accepted by Parse
const (
	KindInteger = "integer"
	KindFloat   = "float"
	KindString  = "string"
)

// Integer - signed whole number
type Integer int64

// Float - floating point number
type Float float64

// String - text, ordered bytewise
type String string

// relative order of different kinds
func rank(x interface{}) int {
	switch x.(type) {
	case Integer:
		return 0
	case Float:
		return 1
	case String:
		return 2
	default:
		return 3
	}
}

func compareRank(a interface{}, b interface{}) int {
	ra := rank(a)
	rb := rank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return +1
	default:
		return 0
	}
}

// Compare - avl.Item interface
func (i Integer) Compare(x interface{}) int {
	j, ok := x.(Integer)
	if !ok {
		return compareRank(i, x)
	}
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// Compare - avl.Item interface
func (f Float) Compare(x interface{}) int {
	g, ok := x.(Float)
	if !ok {
		return compareRank(f, x)
	}
	switch {
	case f < g:
		return -1
	case f > g:
		return +1
	default:
		return 0
	}
}

// Compare - avl.Item interface
func (s String) Compare(x interface{}) int {
	t, ok := x.(String)
	if !ok {
		return compareRank(s, x)
	}
	return strings.Compare(string(s), string(t))
}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

// ValidKind - true if kind is one of the names accepted by Parse
func ValidKind(kind string) bool {
	switch kind {
	case KindInteger, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Parse - convert text to an item of the given kind
//
// a string may be written bare or as a Go quoted string
func Parse(kind string, text string) (avl.Item, error) {
	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		return Integer(n), nil

	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if nil != err || math.IsNaN(f) { // NaN has no order
			return nil, fault.ErrInvalidValue
		}
		return Float(f), nil

	case KindString:
		if len(text) >= 2 && ('"' == text[0] || '`' == text[0]) {
			s, err := strconv.Unquote(text)
			if nil != err {
				return nil, fault.ErrInvalidValue
			}
			return String(s), nil
		}
		return String(text), nil

	default:
		return nil, fault.ErrInvalidValueType
	}
}

// ParseList - convert each text, stopping at the first failure
func ParseList(kind string, texts []string) ([]avl.Item, error) {
	items := make([]avl.Item, 0, len(texts))
	for _, text := range texts {
		v, err := Parse(kind, text)
		if nil != err {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

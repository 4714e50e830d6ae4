// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDelete(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"a", "b", "c"}, om.Keys())

	om.Add("b", 20)
	assert.Equal(t, []int{1, 20, 3}, om.Values())

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"a", "c"}, om.Keys())
	assert.False(t, om.Has("b"))

	om.Add("b", 4)
	assert.Equal(t, []string{"a", "c", "b"}, om.Keys())

	v, ok := om.ValueByKeyTry("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = om.ValueByKeyTry("x")
	assert.False(t, ok)
	assert.Equal(t, 0, om.ValueByKey("x"))

	assert.True(t, om.DeleteKey("a"))
	assert.True(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"c"}, om.Keys())
	assert.True(t, om.DeleteKey("c"))
	assert.Equal(t, 0, om.Len())
	assert.Empty(t, om.Keys())
}

func TestZeroValue(t *testing.T) {
	var om Map[int, string]
	assert.Equal(t, 0, om.Len())
	assert.False(t, om.DeleteKey(1))
	om.Add(1, "one")
	assert.Equal(t, "one", om.ValueByKey(1))
	var nilMap *Map[int, string]
	assert.Equal(t, 0, nilMap.Len())
}

func TestDeleteWhileIterating(t *testing.T) {
	om := Make([]KeyValue[int, string]{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}})
	var seen []int
	for k := range om.All() {
		seen = append(seen, k)
		if k == 1 {
			om.DeleteKey(1)
			om.DeleteKey(2)
		}
		if k == 3 {
			om.Add(5, "e")
		}
	}
	assert.Equal(t, []int{1, 3, 4, 5}, seen)
	assert.Equal(t, []int{3, 4, 5}, om.Keys())
}

func TestDeleteTailWhileIterating(t *testing.T) {
	om := Make([]KeyValue[string, int]{{"a", 1}, {"b", 2}})
	var seen []string
	for k := range om.All() {
		seen = append(seen, k)
		if k == "a" {
			om.DeleteKey("a")
			om.DeleteKey("b")
			om.Add("c", 3)
			om.Add("d", 4)
		}
	}
	assert.Equal(t, []string{"a", "c", "d"}, seen)

	seen = nil
	for k := range om.All() {
		seen = append(seen, k)
		if k == "c" {
			om.Reset()
			om.Add("e", 5)
		}
	}
	assert.Equal(t, []string{"c", "e"}, seen)
	assert.Equal(t, []string{"e"}, om.Keys())
}

func TestCopyReset(t *testing.T) {
	a := Make([]KeyValue[string, int]{{"x", 1}, {"y", 2}})
	b := Make([]KeyValue[string, int]{{"y", 3}, {"z", 4}})
	a.Copy(b)
	assert.Equal(t, []KeyValue[string, int]{{"x", 1}, {"y", 3}, {"z", 4}}, a.Order())
	assert.Equal(t, "[{x 1} {y 3} {z 4}]", a.String())
	a.Reset()
	assert.Equal(t, 0, a.Len())
	a.Add("q", 9)
	assert.Equal(t, []string{"q"}, a.Keys())
}

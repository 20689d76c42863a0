// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeOrderedNested(t *testing.T) {
	t.Parallel()

	value, err := decodeOrdered([]byte(`{"c": {"z": 1, "y": [{"q": 1, "p": 2}]}, "a": "x"}`))
	if err != nil {
		t.Fatalf("decodeOrdered: %v", err)
	}

	root, ok := value.(*orderedObject)
	if !ok {
		t.Fatalf("root is %T", value)
	}

	if !reflect.DeepEqual(root.Keys(), []string{"c", "a"}) {
		t.Fatalf("root keys = %v", root.Keys())
	}

	inner := objectValue(root, "c").(*orderedObject)
	if !reflect.DeepEqual(inner.Keys(), []string{"z", "y"}) {
		t.Fatalf("inner keys = %v", inner.Keys())
	}

	item := objectValue(inner, "y").([]any)[0].(*orderedObject)
	if !reflect.DeepEqual(item.Keys(), []string{"q", "p"}) {
		t.Fatalf("array item keys = %v", item.Keys())
	}
}

func TestDecodeOrderedErrors(t *testing.T) {
	t.Parallel()

	cases := []string{"", "   ", `{"a": }`, `[1, 2`, `{} []`}
	for _, input := range cases {
		if _, err := decodeOrdered([]byte(input)); err == nil {
			t.Fatalf("decodeOrdered(%q) should fail", input)
		}
	}
}

func TestDecodeOrderedNestingDepth(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("[", maxDecodeDepth) + strings.Repeat("]", maxDecodeDepth)
	if _, err := decodeOrdered([]byte(atLimit)); err != nil {
		t.Fatalf("decodeOrdered at depth limit: %v", err)
	}

	cases := []string{
		strings.Repeat("[", maxDecodeDepth+1) + strings.Repeat("]", maxDecodeDepth+1),
		strings.Repeat(`{"a":`, maxDecodeDepth+1) + "1" + strings.Repeat("}", maxDecodeDepth+1),
		strings.Repeat("[", 2_000_000),
	}

	for _, input := range cases {
		_, err := decodeOrdered([]byte(input))
		if !errors.Is(err, errDecodeDepth) {
			t.Fatalf("decodeOrdered error = %v, want %v", err, errDecodeDepth)
		}

		if len(err.Error()) > 64 {
			t.Fatalf("depth error should not carry per-level context: %d bytes", len(err.Error()))
		}
	}
}

func TestCloneOrderedIsDeep(t *testing.T) {
	t.Parallel()

	value, err := decodeOrdered([]byte(`{"list": [1], "nested": {"k": "v"}}`))
	if err != nil {
		t.Fatalf("decodeOrdered: %v", err)
	}

	clone := cloneOrdered(value).(*orderedObject)
	objectValue(clone, "nested").(*orderedObject).set("k", "changed")

	original := objectValue(value.(*orderedObject), "nested").(*orderedObject)
	if got, _ := original.get("k"); got != "v" {
		t.Fatalf("clone shares nested object, original now %v", got)
	}
}

func TestInlineJSONNoHTMLEscape(t *testing.T) {
	t.Parallel()

	value, err := decodeOrdered([]byte(`{"html": "<b>&</b>", "n": 2}`))
	if err != nil {
		t.Fatalf("decodeOrdered: %v", err)
	}

	if got := inlineJSON(value); got != `{"html":"<b>&</b>","n":2}` {
		t.Fatalf("inlineJSON = %s", got)
	}
}

func TestOrderedObjectMarshalJSON(t *testing.T) {
	t.Parallel()

	object := newOrderedObject()
	object.set("b", "1")
	object.set("a", []any{})
	object.set("b", "2")

	data, err := object.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	if string(data) != `{"b":"2","a":[]}` {
		t.Fatalf("json = %s", data)
	}
}

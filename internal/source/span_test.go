package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint after",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 30, End: 40},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "disjoint before",
			span:     Span{Start: 30, End: 40},
			other:    Span{Start: 10, End: 20},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "contained",
			span:     Span{Start: 10, End: 40},
			other:    Span{Start: 20, End: 30},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "identical",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 10, End: 20},
			expected: Span{Start: 10, End: 20},
		},
		{
			name:     "overlapping",
			span:     Span{Start: 10, End: 25},
			other:    Span{Start: 20, End: 40},
			expected: Span{Start: 10, End: 40},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Fatalf("Cover = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected bool
	}{
		{name: "proper subset", span: Span{Start: 0, End: 10}, other: Span{Start: 2, End: 8}, expected: true},
		{name: "same range", span: Span{Start: 0, End: 10}, other: Span{Start: 0, End: 10}, expected: true},
		{name: "start outside", span: Span{Start: 5, End: 10}, other: Span{Start: 4, End: 8}, expected: false},
		{name: "end outside", span: Span{Start: 5, End: 10}, other: Span{Start: 6, End: 11}, expected: false},
		{name: "empty at edge", span: Span{Start: 5, End: 10}, other: Span{Start: 10, End: 10}, expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Contains(tt.other); got != tt.expected {
				t.Fatalf("Contains(%v) = %v, want %v", tt.other, got, tt.expected)
			}
		})
	}
}

func TestSpan_LenEmpty(t *testing.T) {
	sp := NewSpan(3, 8)
	if sp.Len() != 5 {
		t.Fatalf("Len = %d, want 5", sp.Len())
	}
	if sp.Empty() {
		t.Fatal("non-empty span reported Empty")
	}
	empty := NewSpan(4, 4)
	if empty.Len() != 0 || !empty.Empty() {
		t.Fatalf("empty span: Len=%d Empty=%v", empty.Len(), empty.Empty())
	}
}

func TestSpan_String(t *testing.T) {
	if got := NewSpan(3, 8).String(); got != "3-8" {
		t.Fatalf("String = %q, want %q", got, "3-8")
	}
}

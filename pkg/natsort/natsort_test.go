package natsort

import (
	"reflect"
	"testing"
)

func TestSort_NumericRuns(t *testing.T) {
	items := []string{"f2", "f10", "f1"}
	Sort(items)

	expected := []string{"f1", "f2", "f10"}
	if !reflect.DeepEqual(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	}
}

func TestSort_Cases(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected []string
	}{
		{
			name:     "frame names",
			items:    []string{"frame10.png", "frame2.png", "frame1.png"},
			expected: []string{"frame1.png", "frame2.png", "frame10.png"},
		},
		{
			name:     "no digits sorts lexicographically",
			items:    []string{"cherry", "apple", "banana"},
			expected: []string{"apple", "banana", "cherry"},
		},
		{
			name:     "leading zeros compare by value",
			items:    []string{"img010", "img002", "img001"},
			expected: []string{"img001", "img002", "img010"},
		},
		{
			name:     "digit run at the front",
			items:    []string{"10.png", "2.png", "1.png"},
			expected: []string{"1.png", "2.png", "10.png"},
		},
		{
			name:     "prefix orders before longer",
			items:    []string{"frame1", "frame"},
			expected: []string{"frame", "frame1"},
		},
		{
			name:     "multiple digit runs",
			items:    []string{"s2e10", "s2e2", "s1e10"},
			expected: []string{"s1e10", "s2e2", "s2e10"},
		},
		{
			name:     "very long digit runs",
			items:    []string{"v123456789012345678901234567890", "v2"},
			expected: []string{"v2", "v123456789012345678901234567890"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]string, len(tt.items))
			copy(items, tt.items)
			Sort(items)
			if !reflect.DeepEqual(items, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, items)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"f1", "f2", -1},
		{"f2", "f10", -1},
		{"f10", "f2", 1},
		{"f1", "f1", 0},
		{"f01", "f1", 0},
		{"", "a", -1},
		{"1", "a", -1},
	}

	for _, tt := range tests {
		c, err := Compare(tt.a, tt.b)
		if err != nil {
			t.Errorf("Compare(%q, %q): unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if c != tt.expected {
			t.Errorf("Compare(%q, %q): expected %d, got %d", tt.a, tt.b, tt.expected, c)
		}
	}
}

func TestCompareTokens_MixedKinds(t *testing.T) {
	_, err := compareTokens(token{text: "a"}, token{numeric: true, text: "1"})
	if err != ErrIncomparable {
		t.Errorf("expected ErrIncomparable, got %v", err)
	}
}

func TestSort_Stable(t *testing.T) {
	// Equal numeric values with different padding keep their input order.
	items := []string{"f01", "f1"}
	Sort(items)
	expected := []string{"f01", "f1"}
	if !reflect.DeepEqual(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	}
}

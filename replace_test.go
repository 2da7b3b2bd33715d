package grapheme

import "testing"

func TestReplaceAll(t *testing.T) {
	c := New("foo bar foo")
	got := c.ReplaceAll(New("foo"), New("baz"), 0)
	if got.String() != "baz bar baz" {
		t.Errorf("ReplaceAll(\"foo\",\"baz\") = %q, want \"baz bar baz\"", got.String())
	}
}

func TestReplaceAllFromMidpoint(t *testing.T) {
	c := New("foo bar foo")
	got := c.ReplaceAll(New("foo"), New("baz"), 4)
	if got.String() != "foo bar baz" {
		t.Errorf("ReplaceAll from midpoint = %q, want \"foo bar baz\"", got.String())
	}
}

func TestReplaceFirst(t *testing.T) {
	c := New("foo bar foo")
	got := c.ReplaceFirst(New("foo"), New("baz"), 0)
	if got.String() != "baz bar foo" {
		t.Errorf("ReplaceFirst(\"foo\",\"baz\") = %q, want \"baz bar foo\"", got.String())
	}
}

func TestReplaceFirstNoMatch(t *testing.T) {
	c := New("hello")
	got := c.ReplaceFirst(New("xyz"), New("q"), 0)
	if got.String() != "hello" {
		t.Errorf("ReplaceFirst with no match should return input unchanged, got %q", got.String())
	}
}

func TestExplodeReplaceAll(t *testing.T) {
	// Empty src: repl is inserted at every boundary from startIndex
	// onward, including both outer ends.
	c := New("ab")
	got := c.ReplaceAll(Clusters{}, New("-"), 0)
	if got.String() != "-a-b-" {
		t.Errorf("explode ReplaceAll(\"\",\"-\") = %q, want \"-a-b-\"", got.String())
	}
}

func TestExplodeReplaceAllFromMidpoint(t *testing.T) {
	c := New("ab")
	got := c.ReplaceAll(Clusters{}, New("-"), 1)
	if got.String() != "a-b-" {
		t.Errorf("explode ReplaceAll from midpoint = %q, want \"a-b-\"", got.String())
	}
}

func TestExplodeReplaceFirst(t *testing.T) {
	c := New("ab")
	got := c.ReplaceFirst(Clusters{}, New("-"), 0)
	if got.String() != "-ab" {
		t.Errorf("explode ReplaceFirst(\"\",\"-\") = %q, want \"-ab\"", got.String())
	}
}

func TestExplodeReplaceFirstFromMidpoint(t *testing.T) {
	c := New("ab")
	got := c.ReplaceFirst(Clusters{}, New("-"), 1)
	if got.String() != "a-b" {
		t.Errorf("explode ReplaceFirst from midpoint = %q, want \"a-b\"", got.String())
	}
}

func TestReplaceAllOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range startIndex")
		}
	}()
	New("abc").ReplaceAll(New("a"), New("b"), 10)
}

func TestReplaceFirstOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range startIndex")
		}
	}()
	New("abc").ReplaceFirst(New("a"), New("b"), -1)
}

func TestExplodeReplaceAllOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range startIndex")
		}
	}()
	New("ab").ReplaceAll(Clusters{}, New("-"), 10)
}

func TestExplodeReplaceFirstOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range startIndex")
		}
	}()
	New("ab").ReplaceFirst(Clusters{}, New("-"), -1)
}

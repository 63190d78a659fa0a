// Copyright 2026 Abydos Authors.
// All rights reserved.

package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRanker_Rank(t *testing.T) {
	ctx := context.Background()
	scores := map[string]float64{
		"apple":  0.9,
		"cherry": 0.9,
		"banana": 0.4,
	}
	scorer := func(src, tar string) (float64, error) { return scores[tar], nil }
	names := []string{"banana", "cherry", "apple"}

	for _, tc := range []struct {
		desc string
		opts []Option
		want []Match
	}{
		{"all", nil, []Match{{"apple", 0.9}, {"cherry", 0.9}, {"banana", 0.4}}},
		{"min sim", []Option{MinSim(0.5)}, []Match{{"apple", 0.9}, {"cherry", 0.9}}},
		{"limit", []Option{Limit(1)}, []Match{{"apple", 0.9}}},
		{"single worker", []Option{Workers(1)}, []Match{{"apple", 0.9}, {"cherry", 0.9}, {"banana", 0.4}}},
	} {
		r := NewRanker(scorer, tc.opts...)
		got, err := r.Rank(ctx, "query", names)
		if err != nil {
			t.Errorf("%v: Rank failed: %v", tc.desc, err)
		} else if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%v: Rank returned wrong matches (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestRanker_RankError(t *testing.T) {
	scoreErr := errors.New("intentional error")
	r := NewRanker(func(src, tar string) (float64, error) {
		if tar == "bad" {
			return 0, scoreErr
		}
		return 1, nil
	})
	if _, err := r.Rank(context.Background(), "query", []string{"good", "bad"}); !errors.Is(err, scoreErr) {
		t.Errorf("Rank returned %v; want wrapped %v", err, scoreErr)
	}
}

func TestRanker_Norm(t *testing.T) {
	// The default normalization lowercases and strips accents, so the query
	// and candidate should compare equal.
	eq := func(src, tar string) (float64, error) {
		if src == tar {
			return 1, nil
		}
		return 0, nil
	}
	r := NewRanker(eq, MinSim(1))
	got, err := r.Rank(context.Background(), "Café", []string{"cafe"})
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if want := []Match{{"cafe", 1}}; !cmp.Equal(want, got) {
		t.Errorf("Rank = %v; want %v", got, want)
	}

	// With normalization disabled the raw strings differ.
	raw := NewRanker(eq, MinSim(1), Norm(nil))
	if got, err := raw.Rank(context.Background(), "Café", []string{"cafe"}); err != nil || len(got) != 0 {
		t.Errorf("Rank with raw strings = %v, %v; want no matches", got, err)
	}
}

func TestRanker_Block(t *testing.T) {
	var scored []string
	scorer := func(src, tar string) (float64, error) {
		scored = append(scored, tar)
		return 1, nil
	}
	firstLetter := func(s string) []string {
		if s == "" {
			return nil
		}
		return []string{strings.ToLower(s[:1])}
	}
	r := NewRanker(scorer, Workers(1), Block(firstLetter))

	got, err := r.Rank(context.Background(), "Alice", []string{"albert", "bob", "anna"})
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	want := []Match{{"albert", 1}, {"anna", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank returned wrong matches (-want +got):\n%s", diff)
	}
	// bob shares no blocking key with the query and should never be scored.
	for _, name := range scored {
		if name == "bob" {
			t.Error("blocked candidate was scored")
		}
	}
}

func TestRanker_Best(t *testing.T) {
	r := NewRanker(func(src, tar string) (float64, error) {
		return float64(len(tar)) / 10, nil
	})
	m, ok, err := r.Best(context.Background(), "query", []string{"ab", "abcd", "abc"})
	if err != nil || !ok || m.Name != "abcd" {
		t.Errorf("Best = %+v, %v, %v; want abcd, true, nil", m, ok, err)
	}

	if _, ok, err := r.Best(context.Background(), "query", nil); ok || err != nil {
		t.Errorf("Best with no candidates = ok %v, err %v; want false, nil", ok, err)
	}
}

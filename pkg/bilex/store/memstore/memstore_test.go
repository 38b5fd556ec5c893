package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/cognilex/bilex/pkg/bilex/store"
)

func TestAddAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	if err := s.Add(ctx, "run", false, "verb", "laufen"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "run", false, "noun", "Lauf"); err != nil {
		t.Fatal(err)
	}

	rec, ok, err := s.Get(ctx, "run")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	want := []store.Translation{{Class: "verb", Text: "laufen"}, {Class: "noun", Text: "Lauf"}}
	if !reflect.DeepEqual(rec.Translations, want) {
		t.Errorf("Translations = %v, want insertion order %v", rec.Translations, want)
	}

	if _, ok, _ := s.Get(ctx, "absent"); ok {
		t.Error("Get of absent key reported found")
	}
}

func TestFlagOR(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.Add(ctx, "k", false, "", "a")
	s.Add(ctx, "k", true, "", "b")
	s.Add(ctx, "k", false, "", "c")

	rec, _, _ := s.Get(ctx, "k")
	if !rec.UsedSubstitution {
		t.Error("UsedSubstitution should stay true once set")
	}
}

func TestKeysSorted(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, k := range []string{"b", "a", "c"} {
		s.Add(ctx, k, false, "", "x")
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("Keys = %v, want sorted", keys)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Add(ctx, "k", false, "", "a")

	rec, _, _ := s.Get(ctx, "k")
	rec.Translations[0].Text = "mutated"

	again, _, _ := s.Get(ctx, "k")
	if again.Translations[0].Text != "a" {
		t.Error("Get should return a copy of the record")
	}
}

func TestConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Add(ctx, "shared", false, "", fmt.Sprintf("t%d-%d", n, j))
			}
		}(i)
	}
	wg.Wait()

	rec, _, _ := s.Get(ctx, "shared")
	if len(rec.Translations) != 800 {
		t.Errorf("Got %d translations, want 800", len(rec.Translations))
	}
}

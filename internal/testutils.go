package internal

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

// FailureMessage reports a failed comparison
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()

	gotString := TypeToString(got)
	wantString := TypeToString(want)
	t.Errorf("\nGot: %s\nwant: %s", gotString, wantString)
}

// TypeToString returns the string representation of a non-string type
func TypeToString(obj interface{}) string {
	return fmt.Sprintf("%+v", obj)
}

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrored checks for the existence of an error
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, but got nil")
	}
}

// AssertEqual checks that the values are equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		FailureMessage(t, got, want)
	}
}

// AssertDeepEqual checks that the values are deeply equal
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// AssertTrue checks that the value is true
func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if got != true {
		t.Error("Expected to be true, but it wasn't")
	}
}

// AssertSameItems checks that two slices hold the same items, in any order
func AssertSameItems[T comparable](t *testing.T, got, want []T) {
	t.Helper()

	if !reflect.DeepEqual(Counts(got), Counts(want)) {
		FailureMessage(t, got, want)
	}
}

// Counts turns a slice into a multiset
func Counts[T comparable](items []T) map[T]int {
	counts := map[T]int{}
	for _, item := range items {
		counts[item]++
	}
	return counts
}

// SeededRand returns a deterministic source of randomness for tests
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

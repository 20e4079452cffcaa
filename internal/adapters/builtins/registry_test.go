package builtins

import (
	"bytes"
	"reflect"
	"testing"
)

func TestRegistry_Lookup(t *testing.T) {
	tests := []struct {
		name      string
		lookup    string
		wantFound bool
	}{
		{name: "cd is registered", lookup: "cd", wantFound: true},
		{name: "help is registered", lookup: "help", wantFound: true},
		{name: "exit is registered", lookup: "exit", wantFound: true},
		{name: "lookup is case-sensitive", lookup: "CD", wantFound: false},
		{name: "lookup is exact, not prefix", lookup: "cdx", wantFound: false},
		{name: "unknown name misses", lookup: "ls", wantFound: false},
		{name: "empty name misses", lookup: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			r := NewRegistry(&out, &errOut)

			run, found := r.Lookup(tt.lookup)
			if found != tt.wantFound {
				t.Errorf("Lookup(%q) found = %v, want %v", tt.lookup, found, tt.wantFound)
			}
			if found && run == nil {
				t.Errorf("Lookup(%q) returned a nil builtin", tt.lookup)
			}
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRegistry(&out, &errOut)

	want := []string{"cd", "help", "exit"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

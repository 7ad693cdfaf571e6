package command

import (
	"fmt"
	"testing"
)

func helpFixture(t *testing.T) *HelpIndex {
	t.Helper()
	reg, err := NewRegistry(
		newStub("ping", "General"),
		newStub("pin", "General"),
		newStub("help", "General"),
		newStub("purge", "Admin"),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewHelpIndex(reg)
}

func TestDescribeAllFollowsRegistryOrder(t *testing.T) {
	idx := helpFixture(t)

	sections := idx.DescribeAll()
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	if sections[0].Category != "General" || sections[1].Category != "Admin" {
		t.Fatalf("section order = [%s %s]", sections[0].Category, sections[1].Category)
	}
	wantGeneral := []string{"ping", "pin", "help"}
	for i, entry := range sections[0].Entries {
		if entry.Name != wantGeneral[i] {
			t.Errorf("General[%d] = %q, want %q", i, entry.Name, wantGeneral[i])
		}
		if entry.Short == "" {
			t.Errorf("General[%d] has no description", i)
		}
	}
}

func TestDescribe(t *testing.T) {
	idx := helpFixture(t)

	d, ok := idx.Describe("ping")
	if !ok {
		t.Fatal("Describe(ping) = not found")
	}
	if d.Name != "ping" {
		t.Errorf("Describe(ping).Name = %q", d.Name)
	}

	if _, ok := idx.Describe("missing"); ok {
		t.Error("Describe(missing) = found")
	}
}

func TestCompleteMatchesPrefixCaseInsensitively(t *testing.T) {
	idx := helpFixture(t)

	got := idx.Complete("PI")
	want := []string{"ping", "pin"}
	if len(got) != len(want) {
		t.Fatalf("Complete(PI) = %d entries, want %d", len(got), len(want))
	}
	for i, entry := range got {
		if entry.Name != want[i] {
			t.Errorf("Complete(PI)[%d] = %q, want %q (registration order)", i, entry.Name, want[i])
		}
	}

	if got := idx.Complete("zzz"); len(got) != 0 {
		t.Errorf("Complete(zzz) = %v, want none", got)
	}
}

func TestCompleteEmptyPrefixListsEverythingInOrder(t *testing.T) {
	idx := helpFixture(t)

	got := idx.Complete("")
	want := []string{"ping", "pin", "help", "purge"}
	if len(got) != len(want) {
		t.Fatalf("Complete(\"\") = %d entries, want %d", len(got), len(want))
	}
	for i, entry := range got {
		if entry.Name != want[i] {
			t.Errorf("Complete(\"\")[%d] = %q, want %q", i, entry.Name, want[i])
		}
	}
}

func TestCompleteTruncatesToMaxSuggestions(t *testing.T) {
	var cmds []Command
	for i := 0; i < MaxSuggestions+5; i++ {
		cmds = append(cmds, newStub(fmt.Sprintf("cmd%02d", i), "General"))
	}
	reg, err := NewRegistry(cmds...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	got := NewHelpIndex(reg).Complete("cmd")
	if len(got) != MaxSuggestions {
		t.Fatalf("len(Complete) = %d, want %d", len(got), MaxSuggestions)
	}
	if got[0].Name != "cmd00" || got[MaxSuggestions-1].Name != fmt.Sprintf("cmd%02d", MaxSuggestions-1) {
		t.Errorf("truncation should keep the first %d in registration order", MaxSuggestions)
	}
}

package cmd

import "testing"

func TestRootCommandWiring(t *testing.T) {
	root := GetRootCmd()

	registered := make(map[string]bool)
	for _, c := range root.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range []string{
		"add", "list", "show", "edit", "remove",
		"sync", "export", "transcribe", "config",
	} {
		if !registered[name] {
			t.Errorf("command %q is not registered on the root command", name)
		}
	}

	if root.PersistentPreRunE == nil || root.PersistentPostRunE == nil {
		t.Error("root command must open the store before and close it after every run")
	}
}

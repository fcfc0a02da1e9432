package main

import "testing"

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "chatrelay" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "chatrelay")
	}
	if rootCmd.Version == "" {
		t.Error("rootCmd.Version should not be empty")
	}

	flag := rootCmd.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not registered")
	}
	if flag.DefValue != "config.yaml" {
		t.Errorf("--config default = %q, want %q", flag.DefValue, "config.yaml")
	}
}

func TestRunCommandFlags(t *testing.T) {
	if runCmd == nil {
		t.Fatal("runCmd is nil")
	}
	if runCmd.RunE == nil {
		t.Error("runCmd.RunE should not be nil")
	}

	for _, name := range []string{"listen", "log-level", "dry-run"} {
		if runCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not registered", name)
		}
	}
}

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Run == nil {
		t.Error("versionCmd.Run should not be nil")
	}
}

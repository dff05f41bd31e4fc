package main

import (
	"testing"
)

func TestAnalyzeCmd_FlagsExist(t *testing.T) {
	cmd := analyzeCmd()

	expectedFlags := []string{"format", "json", "output", "details", "min-score", "sort", "recursive", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestAnalyzeCmd_ShortFlags(t *testing.T) {
	cmd := analyzeCmd()

	shortFlags := map[string]string{
		"f": "format",
		"o": "output",
		"d": "details",
		"r": "recursive",
		"c": "config",
	}

	for short, long := range shortFlags {
		flag := cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestAnalyzeCmd_DefaultValues(t *testing.T) {
	cmd := analyzeCmd()

	formatFlag := cmd.Flags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("Expected default format to be 'text', got '%s'", formatFlag.DefValue)
	}

	sortFlag := cmd.Flags().Lookup("sort")
	if sortFlag == nil {
		t.Fatal("sort flag not found")
	}
	if sortFlag.DefValue != "score" {
		t.Errorf("Expected default sort to be 'score', got '%s'", sortFlag.DefValue)
	}
}

func TestAnalyzeCmd_NoArgsError(t *testing.T) {
	cmd := analyzeCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Error("Expected error when no URLs specified")
	}
}

func TestCheckCmd_FlagsExist(t *testing.T) {
	cmd := checkCmd()

	expectedFlags := []string{"max-score", "allow-suspicious", "verbose", "json", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestCheckCmd_DefaultMaxScore(t *testing.T) {
	cmd := checkCmd()

	flag := cmd.Flags().Lookup("max-score")
	if flag == nil {
		t.Fatal("max-score flag not found")
	}
	if flag.DefValue != "49" {
		t.Errorf("Expected default max-score to be '49', got '%s'", flag.DefValue)
	}
}

func TestCheckCmd_NoArgsExitCode(t *testing.T) {
	cmd := checkCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	exitErr, ok := err.(*CheckExitError)
	if !ok {
		t.Fatalf("Expected CheckExitError, got %T", err)
	}
	if exitErr.Code != 2 {
		t.Errorf("Expected exit code 2 for missing input, got %d", exitErr.Code)
	}
}

func TestServeCmd_FlagsExist(t *testing.T) {
	cmd := serveCmd()

	expectedFlags := []string{"listen", "storage", "config"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command failed: %v", err)
	}
}

func TestCheckExitError(t *testing.T) {
	err := &CheckExitError{Code: 1, Message: "threshold violated"}
	if err.Error() != "threshold violated" {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

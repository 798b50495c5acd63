package main

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// runMain re-executes the test binary as the enumfiles command.
func runMain(t *testing.T, env []string, args ...string) (int, string) {
	t.Helper()
	if os.Getenv("ENUMFILES_RUN_MAIN") == "1" {
		t.Skip("nested invocation")
	}

	cmd := exec.Command(os.Args[0], append([]string{"-test.run=TestMainProcess", "--"}, args...)...)
	cmd.Env = append(os.Environ(), append([]string{"ENUMFILES_RUN_MAIN=1"}, env...)...)
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), string(out)
	}
	if err != nil {
		t.Fatalf("failed to run subprocess: %v", err)
	}
	return 0, string(out)
}

// TestMainProcess is the subprocess entry point used by runMain.
func TestMainProcess(t *testing.T) {
	if os.Getenv("ENUMFILES_RUN_MAIN") != "1" {
		return
	}
	for i, arg := range os.Args {
		if arg == "--" {
			os.Args = append([]string{"enumfiles"}, os.Args[i+1:]...)
			break
		}
	}
	main()
	os.Exit(0)
}

func TestMain_PanicExitCode(t *testing.T) {
	code, out := runMain(t, []string{"ENUMFILES_TEST_PANIC=1"}, "version")
	if code != enumfiles.ExitPanic {
		t.Errorf("exit code = %d, want %d", code, enumfiles.ExitPanic)
	}
	if !strings.Contains(out, "intentional test panic") {
		t.Errorf("expected panic message in output, got: %s", out)
	}
}

func TestMain_UsageExitCode(t *testing.T) {
	code, _ := runMain(t, nil, "files", "a", "b")
	if code != enumfiles.ExitUsageError {
		t.Errorf("exit code = %d, want %d", code, enumfiles.ExitUsageError)
	}
}

func TestMain_ConfigExitCode(t *testing.T) {
	code, _ := runMain(t, nil, "files", t.TempDir(), "--format", "xml")
	if code != enumfiles.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, enumfiles.ExitConfigError)
	}
}

func TestMain_Success(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/a.txt", nil, 0644); err != nil {
		t.Fatal(err)
	}

	code, out := runMain(t, nil, "files", dir, "--color", "never")
	if code != enumfiles.ExitSuccess {
		t.Errorf("exit code = %d, want %d (output: %s)", code, enumfiles.ExitSuccess, out)
	}
	if !strings.Contains(out, "a.txt") {
		t.Errorf("expected a.txt in output, got: %s", out)
	}
}

func TestMain_VersionFlag(t *testing.T) {
	code, out := runMain(t, nil, "--version")
	if code != enumfiles.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, enumfiles.ExitSuccess)
	}
	if !strings.HasPrefix(out, "enumfiles ") {
		t.Errorf("unexpected version output: %s", out)
	}
}

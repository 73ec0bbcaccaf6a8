package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	toggled  []string
	err      error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return f.err
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Speed(ctx context.Context) error    { f.calls = append(f.calls, "speed"); return nil }
func (f *fakeExec) Route(ctx context.Context) error    { f.calls = append(f.calls, "route"); return nil }
func (f *fakeExec) Settings(ctx context.Context) error { f.calls = append(f.calls, "settings"); return nil }
func (f *fakeExec) Users(ctx context.Context) error    { f.calls = append(f.calls, "users"); return nil }
func (f *fakeExec) Toggle(ctx context.Context, name string) error {
	f.calls = append(f.calls, "toggle")
	f.toggled = append(f.toggled, name)
	return nil
}

func run(t *testing.T, exec *fakeExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)), &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}
	out := run(t, exec, strings.Join([]string{
		"help",
		"speed",
		"login",
		"help",
		"speed",
		"route",
		"settings",
		"toggle dark_mode",
		"users",
		"foobar",
		"logout",
		"exit",
		"speed",
	}, "\n"))

	assert.Equal(t, []string{"login", "speed", "route", "settings", "toggle", "users", "logout"}, exec.calls)
	assert.Equal(t, []string{"dark_mode"}, exec.toggled)
	assert.Contains(t, out, "Available commands: signup, login, users, exit")
	assert.Contains(t, out, "Available commands: speed, route")
	assert.Contains(t, out, "Error: please log in first")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
	assert.Contains(t, out, "stm (status)> ")
}

func TestRunREPL_ToggleUsage(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := run(t, exec, "toggle\ntoggle a b\nquit\n")

	assert.Empty(t, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "Usage: toggle"))
}

func TestRunREPL_HandlerErrorDoesNotStopLoop(t *testing.T) {
	exec := &fakeExec{err: errors.New("user with this email already exists")}
	out := run(t, exec, "signup\nregister\nexit\n")

	assert.Equal(t, []string{"signup", "signup"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: user with this email already exists"))
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	exec := &fakeExec{}
	run(t, exec, "users")

	assert.Equal(t, []string{"users"}, exec.calls)
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("users\n")), &out)

	assert.Empty(t, exec.calls)
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Ask(ctx context.Context, input assistant.AskInput) (assistant.AskOutput, error) {
	if !assistant.ShouldProcess(input.Query) {
		return assistant.AskOutput{Skipped: true}, nil
	}
	return assistant.AskOutput{
		Prediction: assistant.Prediction{TopIntent: "VerMenu", Entities: []assistant.Entity{}},
		Intent:     assistant.IntentVerMenu,
		Action:     "Showing menu for todo...",
		Reply: assistant.Reply{
			IntentLine:    "Detected intent: VerMenu",
			EntitiesBlock: "Detected entities: none",
			ActionLine:    "Showing menu for todo...",
		},
	}, nil
}

func newTestCmd(in string, plain bool) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("plain", plain, "")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(in))
	return cmd, &out
}

func TestNewShellWith_Plain(t *testing.T) {
	cmd, out := newTestCmd("menu\nquit\n", true)

	sh, err := newShellWith(cmd, log.NewNop(), stubUseCase{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Detected intent: VerMenu\nDetected entities: none\nShowing menu for todo...\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestNewShellWith_Styled(t *testing.T) {
	cmd, out := newTestCmd("", false)

	sh, err := newShellWith(cmd, log.NewNop(), stubUseCase{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sh.Ask(context.Background(), "menu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "VerMenu") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"ask", "chat"} {
		if !names[want] {
			t.Errorf("missing %s command", want)
		}
	}
}

package steps

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// mockReader returns pre-defined lines as user input.
type mockReader struct {
	lines []string
	pos   int
}

func (reader *mockReader) readLine() (string, error) {
	if reader.pos >= len(reader.lines) {
		return "", fmt.Errorf("no more input")
	}
	line := reader.lines[reader.pos]
	reader.pos++
	return line, nil
}

func manifestTemplateCtx(vars ...scaffold.UserPrompt) *scaffold.TemplateCtx {
	templateCtx := scaffold.NewTemplateContext()
	templateCtx.IsManifestPresent = true
	templateCtx.Manifest.Vars = vars
	return &templateCtx
}

func TestCollectVarsFromUser(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := manifestTemplateCtx(
		scaffold.UserPrompt{Prompt: "Author", Name: "author"},
		scaffold.UserPrompt{Prompt: "License", Name: "license", Default: "MIT"},
	)

	collectStep := CollectTemplateVarsFromUser{
		Reader: &mockReader{lines: []string{"alice", ""}},
	}
	require.NoError(t, collectStep.Run(&createCtx, templateCtx))
	require.Equal(t, "alice", templateCtx.Vars["author"])
	require.Equal(t, "MIT", templateCtx.Vars["license"])
}

func TestCollectVarsValidation(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := manifestTemplateCtx(
		scaffold.UserPrompt{Prompt: "Name", Name: "prog", Re: `^\w+$`},
	)

	// First input is rejected by the regular expression, second passes.
	collectStep := CollectTemplateVarsFromUser{
		Reader: &mockReader{lines: []string{"not valid!", "sideprog"}},
	}
	require.NoError(t, collectStep.Run(&createCtx, templateCtx))
	require.Equal(t, "sideprog", templateCtx.Vars["prog"])
}

func TestCollectVarsSilentMode(t *testing.T) {
	createCtx := create_ctx.CreateCtx{SilentMode: true}
	templateCtx := manifestTemplateCtx(
		scaffold.UserPrompt{Prompt: "License", Name: "license", Default: "MIT"},
	)

	collectStep := CollectTemplateVarsFromUser{Reader: &mockReader{}}
	require.NoError(t, collectStep.Run(&createCtx, templateCtx))
	require.Equal(t, "MIT", templateCtx.Vars["license"])
}

func TestCollectVarsSilentModeNoDefault(t *testing.T) {
	createCtx := create_ctx.CreateCtx{SilentMode: true}
	templateCtx := manifestTemplateCtx(
		scaffold.UserPrompt{Prompt: "Author", Name: "author"},
	)

	collectStep := CollectTemplateVarsFromUser{Reader: &mockReader{}}
	require.EqualError(t, collectStep.Run(&createCtx, templateCtx),
		"author variable value is not set")
}

func TestCollectVarsPresetInvalid(t *testing.T) {
	createCtx := create_ctx.CreateCtx{SilentMode: true}
	templateCtx := manifestTemplateCtx(
		scaffold.UserPrompt{Prompt: "Name", Name: "prog", Re: `^\w+$`},
	)
	templateCtx.Vars["prog"] = "not valid!"

	collectStep := CollectTemplateVarsFromUser{Reader: &mockReader{}}
	require.EqualError(t, collectStep.Run(&createCtx, templateCtx),
		"invalid format of prog variable")
}

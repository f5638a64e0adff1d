package engines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const templateText = `name={{.name}}
class={{ .class }}`

const templateFileName = "Cargo.toml.ct.template"
const resultFileName = "Cargo.toml"
const fileMode = os.FileMode(0640)

func TestTemplateFileRender(t *testing.T) {
	workDir := t.TempDir()

	srcFileName := filepath.Join(workDir, templateFileName)
	require.NoError(t, os.WriteFile(srcFileName, []byte(templateText), fileMode))

	dstFileName := filepath.Join(workDir, resultFileName)
	data := map[string]string{
		"name":  "my-contract",
		"class": "phat-contract",
	}

	engine := GoTextEngine{}
	require.NoError(t, engine.RenderFile(srcFileName, dstFileName, data))

	// Check generated file permissions equal to origin.
	stat, err := os.Stat(dstFileName)
	require.NoError(t, err)
	require.Equal(t, fileMode, stat.Mode())

	// Check file content.
	buf, err := os.ReadFile(dstFileName)
	require.NoError(t, err)
	require.Equal(t, "name=my-contract\nclass=phat-contract", string(buf))
}

func TestTemplateFileRenderMissingValues(t *testing.T) {
	workDir := t.TempDir()

	srcFileName := filepath.Join(workDir, templateFileName)
	require.NoError(t, os.WriteFile(srcFileName, []byte(templateText), fileMode))

	dstFileName := filepath.Join(workDir, resultFileName)
	engine := GoTextEngine{}
	// Missing key is an error.
	require.Error(t, engine.RenderFile(srcFileName, dstFileName,
		map[string]string{"name": "my-contract"}))
}

func TestTextRender(t *testing.T) {
	engine := GoTextEngine{}

	text, err := engine.RenderText("{{ .class }}-start", map[string]string{
		"class": "phat-contract",
	})
	require.NoError(t, err)
	require.Equal(t, "phat-contract-start", text)

	_, err = engine.RenderText("{{ .undefined }}", map[string]string{})
	require.Error(t, err)

	_, err = engine.RenderText("{{ .broken ", map[string]string{})
	require.Error(t, err)
}

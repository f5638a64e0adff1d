package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

func stagedProject(t *testing.T, content string) *scaffold.TemplateCtx {
	t.Helper()

	templateCtx := scaffold.NewTemplateContext()
	templateCtx.ProjectPath = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templateCtx.ProjectPath, "Cargo.toml"),
		[]byte(content), 0o644))

	return &templateCtx
}

func TestMoveProjectDir(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := stagedProject(t, "[package]\n")
	stagingPath := templateCtx.ProjectPath
	templateCtx.TargetProjectPath = filepath.Join(t.TempDir(), "proj1")

	require.NoError(t, MoveProjectDirectory{}.Run(&createCtx, templateCtx))

	require.FileExists(t, filepath.Join(templateCtx.TargetProjectPath, "Cargo.toml"))
	require.NoDirExists(t, stagingPath)
	require.Equal(t, templateCtx.TargetProjectPath, templateCtx.ProjectPath)
}

func TestMoveProjectDirDestinationExists(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	targetDir := filepath.Join(t.TempDir(), "proj1")
	require.NoError(t, os.Mkdir(targetDir, 0o755))

	templateCtx := stagedProject(t, "[package]\n")
	templateCtx.TargetProjectPath = targetDir

	err := MoveProjectDirectory{}.Run(&createCtx, templateCtx)
	var destinationExistsErr *scaffold.DestinationExistsError
	require.ErrorAs(t, err, &destinationExistsErr)

	// Force mode replaces the existing destination.
	createCtx.ForceMode = true
	require.NoError(t, MoveProjectDirectory{}.Run(&createCtx, templateCtx))
	require.FileExists(t, filepath.Join(targetDir, "Cargo.toml"))
}

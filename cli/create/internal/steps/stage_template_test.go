package steps

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
	"github.com/tenheadedlion/contemplate/cli/create/registry"
)

func stagedTemplateCtx(t *testing.T, descriptor registry.TemplateDescriptor) (
	*create_ctx.CreateCtx, *scaffold.TemplateCtx,
) {
	t.Helper()

	createCtx := &create_ctx.CreateCtx{WorkDir: t.TempDir()}
	templateCtx := scaffold.NewTemplateContext()
	templateCtx.Descriptor = descriptor
	templateCtx.ProjectPath = t.TempDir()

	return createCtx, &templateCtx
}

func TestStageEmbeddedTemplate(t *testing.T) {
	descriptor, err := registry.Resolve("phat-contract", nil, nil)
	require.NoError(t, err)

	createCtx, templateCtx := stagedTemplateCtx(t, descriptor)
	require.NoError(t, StageTemplate{}.Run(createCtx, templateCtx))

	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "MANIFEST.yaml"))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "Cargo.toml.ct.template"))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, ".gitignore"))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "src", "lib.rs"))
}

func TestStageEmbeddedTemplateFileModes(t *testing.T) {
	descriptor, err := registry.Resolve("phat-contract-with-sideprog", nil, nil)
	require.NoError(t, err)

	createCtx, templateCtx := stagedTemplateCtx(t, descriptor)
	require.NoError(t, StageTemplate{}.Run(createCtx, templateCtx))

	// Executable bit is restored from the built-in file modes table.
	stat, err := os.Stat(filepath.Join(templateCtx.ProjectPath, "scripts", "build.sh"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), stat.Mode().Perm())

	stat, err = os.Stat(filepath.Join(templateCtx.ProjectPath, "src", "lib.rs"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), stat.Mode().Perm())
}

func TestStageDirectoryTemplate(t *testing.T) {
	templateDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(templateDir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "src", "main.rs"),
		[]byte("fn main() {}\n"), 0o644))

	descriptor := registry.TemplateDescriptor{
		Name:        "local",
		Kind:        registry.SourceDirectory,
		Location:    templateDir,
		NamePattern: registry.DefaultNamePattern,
	}

	createCtx, templateCtx := stagedTemplateCtx(t, descriptor)
	require.NoError(t, StageTemplate{}.Run(createCtx, templateCtx))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "src", "main.rs"))
}

func writeArchive(t *testing.T, archivePath string, files map[string]string) {
	t.Helper()

	archive, err := os.Create(archivePath)
	require.NoError(t, err)
	defer archive.Close()

	gzipWriter := gzip.NewWriter(archive)
	defer gzipWriter.Close()
	tarWriter := tar.NewWriter(gzipWriter)
	defer tarWriter.Close()

	for name, content := range files {
		require.NoError(t, tarWriter.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}))
		_, err := io.WriteString(tarWriter, content)
		require.NoError(t, err)
	}
}

func TestStageArchiveTemplate(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "archived.tgz")
	writeArchive(t, archivePath, map[string]string{
		"README.md":        "# archived template\n",
		"src/lib.rs":       "pub fn answer() -> u32 { 42 }\n",
		"Cargo.toml":       "[package]\n",
		"nested/deep/file": "data\n",
	})

	descriptor := registry.TemplateDescriptor{
		Name:        "archived",
		Kind:        registry.SourceArchive,
		Location:    archivePath,
		NamePattern: registry.DefaultNamePattern,
	}

	createCtx, templateCtx := stagedTemplateCtx(t, descriptor)
	require.NoError(t, StageTemplate{}.Run(createCtx, templateCtx))

	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "README.md"))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "src", "lib.rs"))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "nested", "deep", "file"))
}

func runGit(t *testing.T, workDir string, args ...string) {
	t.Helper()

	gitArgs := append([]string{
		"-c", "user.name=contemplate",
		"-c", "user.email=contemplate@localhost",
	}, args...)
	cmd := exec.Command("git", gitArgs...)
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

func TestStageGitTemplate(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	templateRepo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(templateRepo, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateRepo, "src", "lib.rs"),
		[]byte("pub fn answer() -> u32 { 42 }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(templateRepo, "Cargo.toml.ct.template"),
		[]byte("[package]\nname = \"{{ .name }}\"\n"), 0o644))
	runGit(t, templateRepo, "init")
	runGit(t, templateRepo, "add", ".")
	runGit(t, templateRepo, "commit", "-m", "template")

	descriptor := registry.TemplateDescriptor{
		Name:        "remote",
		Kind:        registry.SourceGit,
		Location:    templateRepo,
		NamePattern: registry.DefaultNamePattern,
	}

	createCtx, templateCtx := stagedTemplateCtx(t, descriptor)
	require.NoError(t, StageTemplate{}.Run(createCtx, templateCtx))

	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "src", "lib.rs"))
	require.FileExists(t, filepath.Join(templateCtx.ProjectPath, "Cargo.toml.ct.template"))
	// Git history is stripped from the staged copy.
	require.NoDirExists(t, filepath.Join(templateCtx.ProjectPath, ".git"))
}

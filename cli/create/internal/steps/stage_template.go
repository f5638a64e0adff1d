package steps

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/tenheadedlion/contemplate/cli/create/builtin_templates"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
	"github.com/tenheadedlion/contemplate/cli/create/registry"
	"github.com/tenheadedlion/contemplate/cli/util"
)

const defaultPermissions = os.FileMode(0o755)

// StageTemplate represents a step copying the class template into the
// staging directory.
type StageTemplate struct {
}

// Run stages the resolved template into the staging directory.
func (StageTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	descriptor := templateCtx.Descriptor

	switch descriptor.Kind {
	case registry.SourceEmbedded:
		log.Infof("Using built-in %q template", descriptor.Name)
		return stageEmbedded(descriptor, templateCtx.ProjectPath)
	case registry.SourceDirectory:
		log.Infof("Using template from %s", descriptor.Location)
		if err := copy.Copy(descriptor.Location, templateCtx.ProjectPath); err != nil {
			return fmt.Errorf("template copying failed: %s", err)
		}
		if err := os.Chmod(templateCtx.ProjectPath, defaultPermissions); err != nil {
			return fmt.Errorf("failed to change permissions of %s: %s",
				templateCtx.ProjectPath, err)
		}
		return nil
	case registry.SourceArchive:
		log.Infof("Using template from %s", descriptor.Location)
		if err := util.ExtractTarGz(descriptor.Location, templateCtx.ProjectPath); err != nil {
			return fmt.Errorf("template archive extraction failed: %s", err)
		}
		return nil
	case registry.SourceGit:
		return stageGit(createCtx, descriptor, templateCtx.ProjectPath)
	}

	return fmt.Errorf("template %q is not found", descriptor.Name)
}

// stageEmbedded writes an embedded template subtree to dstPath.
// Embedded files lose their modes, so executable bits are restored
// from the built-in file modes table.
func stageEmbedded(descriptor registry.TemplateDescriptor, dstPath string) error {
	subFs, err := fs.Sub(builtin_templates.TemplatesFs, descriptor.Location)
	if err != nil {
		return fmt.Errorf("failed to open built-in template %q: %s", descriptor.Name, err)
	}
	fileModes := builtin_templates.FileModes[descriptor.Name]

	return fs.WalkDir(subFs, ".", func(entryPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entryPath == "." {
			return nil
		}

		outPath := filepath.Join(dstPath, filepath.FromSlash(entryPath))
		if entry.IsDir() {
			return os.MkdirAll(outPath, defaultPermissions)
		}

		fileMode := os.FileMode(0o644)
		if mode, found := fileModes[entryPath]; found {
			fileMode = os.FileMode(mode)
		}

		inFile, err := subFs.Open(entryPath)
		if err != nil {
			return err
		}
		defer inFile.Close()

		outFile, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
		if err != nil {
			return err
		}
		if _, err := io.Copy(outFile, inFile); err != nil {
			outFile.Close()
			return err
		}

		return outFile.Close()
	})
}

// stageGit clones a remote template repository to dstPath and removes
// its git history.
func stageGit(createCtx *create_ctx.CreateCtx, descriptor registry.TemplateDescriptor,
	dstPath string,
) error {
	log.Infof("Fetching template from %s", descriptor.Location)

	err := util.ExecuteCommand("git", createCtx.Verbose, io.Discard, "",
		"clone", "--depth", "1", descriptor.Location, dstPath)
	if err != nil {
		return fmt.Errorf("failed to clone %s: %s", descriptor.Location, err)
	}

	if err := os.RemoveAll(filepath.Join(dstPath, ".git")); err != nil {
		return fmt.Errorf("failed to remove git history: %s", err)
	}

	return nil
}

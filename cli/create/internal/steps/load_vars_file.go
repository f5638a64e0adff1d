package steps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct {
}

// Run loads variable definitions from the file specified in the
// command line. Each line is a var-name=value pair.
func (LoadVarsFile) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	if createCtx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	varsFilePath := createCtx.VarsFile
	if !filepath.IsAbs(varsFilePath) {
		varsFilePath = filepath.Join(createCtx.WorkDir, varsFilePath)
	}
	if _, err := os.Stat(varsFilePath); err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}

	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		varDef, err := parseVarDefinition(line)
		if err != nil {
			return fmt.Errorf("failed to load vars from %s: %s", varsFilePath, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}

	return scanner.Err()
}

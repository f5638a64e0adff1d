package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

const formatError = `wrong variable definition format: %s
Usage: --var "var-name=value"`

// varDefinition is a parsed variable definition.
type varDefinition struct {
	name  string
	value string
}

// parseVarDefinition parses var-name=value definition string.
func parseVarDefinition(definition string) (varDefinition, error) {
	definition = strings.TrimSpace(definition)
	varName, value, found := strings.Cut(definition, "=")
	if !found || varName == "" || value == "" {
		return varDefinition{}, fmt.Errorf(formatError, definition)
	}
	return varDefinition{varName, value}, nil
}

// FillTemplateVarsFromCli represents a step for collecting variables
// passed using command line args.
type FillTemplateVarsFromCli struct {
}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	for _, definition := range createCtx.VarsFromCli {
		varDef, err := parseVarDefinition(definition)
		if err != nil {
			return err
		}
		log.Debugf("Setting var from CLI: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}
	return nil
}

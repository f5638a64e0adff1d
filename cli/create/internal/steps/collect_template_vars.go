package steps

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// Reader interface is used for reading user input.
type Reader interface {
	readLine() (string, error)
}

// consoleReader implements reading from console.
type consoleReader struct {
	stdinReader *bufio.Reader
}

// readLine reads line from console. New-line symbol is trimmed.
func (consoleReader consoleReader) readLine() (string, error) {
	input, err := consoleReader.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSuffix(input, "\n"), nil
}

// NewConsoleReader create new console reader.
func NewConsoleReader() consoleReader {
	return consoleReader{bufio.NewReader(os.Stdin)}
}

// CollectTemplateVarsFromUser represents interactive variables collection step.
type CollectTemplateVarsFromUser struct {
	// Reader is used to get user input.
	Reader Reader
}

// Run collects template variables from user in interactive mode.
// In silent mode defaults are used, missing values are errors.
func (collectStep CollectTemplateVarsFromUser) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	var err error
	if !templateCtx.IsManifestPresent {
		return nil
	}

	for _, varInfo := range templateCtx.Manifest.Vars {
		// Check if var is present, and validate it.
		existingValue, found := templateCtx.Vars[varInfo.Name]
		if found {
			if varInfo.Re != "" {
				matched, err := regexp.MatchString(varInfo.Re, existingValue)
				if err != nil {
					return fmt.Errorf("failed to validate user input: %s", err)
				}
				if !matched {
					if createCtx.SilentMode {
						return fmt.Errorf("invalid format of %s variable", varInfo.Name)
					}
					fmt.Printf("Invalid format of %s variable.\n", varInfo.Name)
				} else {
					continue
				}
			} else {
				continue
			}
		}

		matched := false
		var input string
		for !matched {
			if varInfo.Default == "" {
				if createCtx.SilentMode {
					return fmt.Errorf("%s variable value is not set", varInfo.Name)
				}
				fmt.Printf("%s: ", varInfo.Prompt)
			} else {
				if createCtx.SilentMode {
					input = varInfo.Default
				} else {
					fmt.Printf("%s (default: %s): ", varInfo.Prompt, varInfo.Default)
				}
			}

			// User input.
			if !createCtx.SilentMode {
				input, err = collectStep.Reader.readLine()
				if err != nil {
					return fmt.Errorf("error reading user input: %s", err)
				}
			}

			if input == "" {
				if varInfo.Default == "" {
					fmt.Println("Please enter a value.")
				} else {
					input = varInfo.Default
				}
			}
			if input != "" {
				if varInfo.Re != "" {
					matched, err = regexp.MatchString(varInfo.Re, input)
					if err != nil {
						return fmt.Errorf("failed to validate user input: %s", err)
					}
					if !matched {
						if createCtx.SilentMode {
							return fmt.Errorf("invalid format of %s variable", varInfo.Name)
						}
						fmt.Println("Invalid format. Try again.")
					}
				} else {
					matched = true
				}
			}
		}
		templateCtx.Vars[varInfo.Name] = input
	}

	return nil
}

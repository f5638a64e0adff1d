package builtin_templates

import (
	"embed"

	"github.com/tenheadedlion/contemplate/cli/create/builtin_templates/static"
)

//go:embed all:templates
var TemplatesFs embed.FS

// FileModes contains mapping of file modes by built-in class name.
// Embedded files lose their modes, so executable bits are tracked here.
var FileModes = map[string]map[string]int{
	"phat-contract":               static.PhatContractFileModes,
	"phat-contract-with-sideprog": static.PhatContractWithSideprogFileModes,
}

// Names contains built-in class names.
var Names = [...]string{"phat-contract", "phat-contract-with-sideprog"}

// Descriptions contains built-in class descriptions by class name.
var Descriptions = map[string]string{
	"phat-contract":               "a Phala Phat Contract starter project",
	"phat-contract-with-sideprog": "a Phat Contract starter project with a SideVM program",
}

package static

// PhatContractFileModes contains file modes of phat-contract template files.
var PhatContractFileModes = map[string]int{}

// PhatContractWithSideprogFileModes contains file modes of
// phat-contract-with-sideprog template files.
var PhatContractWithSideprogFileModes = map[string]int{
	"scripts/build.sh": 0o755,
}

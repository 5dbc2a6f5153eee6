package devtest

import "embed"

//go:embed testdata/*.yaml
var testdataFS embed.FS

// Testdata returns the raw bytes of a fixture file under testdata/ (e.g.
// "grid4x4.yaml"). Exported so _test.go files in other packages (wirelen,
// place, legalise) can load the same fixtures without hard-coding a
// relative path to this package's directory.
func Testdata(name string) ([]byte, error) {
	return testdataFS.ReadFile("testdata/" + name)
}

package coordinate_test

import (
	"fmt"

	"github.com/matzehuels/cleardef/pkg/coordinate"
)

func ExampleParse() {
	// A crates.io coordinate; "-" marks the empty namespace
	coord, _ := coordinate.Parse("crate/cratesio/-/syn/1.0.14")
	fmt.Println(coord.Shape)
	fmt.Println(coord.Name)
	fmt.Println(coord.Namespace == "")
	// Output:
	// crate
	// syn
	// true
}

func ExampleParse_curation() {
	// The pr suffix requests a pending curation applied to the result
	coord, _ := coordinate.Parse("git/github/myorg/myrepo/abcdef/pr/42")
	fmt.Println(coord.Namespace)
	fmt.Println(*coord.CurationPR)
	// Output:
	// myorg
	// 42
}

func ExampleCoordinate_String() {
	coord, _ := coordinate.Parse("crate/cratesio/-/serde/1.0.0")
	fmt.Println(coord.String())
	// Output:
	// crate/cratesio/-/serde/1.0.0
}

func ExampleParseVersion() {
	// Strict semver parses; anything else stays opaque
	fmt.Println(coordinate.ParseVersion("1.0.14").IsSemver())
	fmt.Println(coordinate.ParseVersion("abcdef").IsSemver())
	fmt.Println(coordinate.ParseVersion("v1.0.14").IsSemver())
	// Output:
	// true
	// false
	// false
}

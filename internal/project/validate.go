package project

import (
	"fmt"
	"path/filepath"
)

// Validate reports whether root is an Angular project: both package.json and
// angular.json exist, and package.json declares @angular/core as a regular
// or development dependency. Only read-only probes are performed.
func Validate(root string) Check {
	for _, marker := range []string{DescriptorFile, PackageFile} {
		if !exists(filepath.Join(root, marker)) {
			return fail(marker + " not found")
		}
	}

	pkg, err := readPackage(root)
	if err != nil {
		return undetermined(err)
	}
	if !pkg.HasDependency(CorePackage) {
		return fail(fmt.Sprintf("%s does not declare %s", PackageFile, CorePackage))
	}
	return pass()
}

// IsValid is Validate reduced to its boolean answer.
func IsValid(root string) bool {
	return Validate(root).Value
}

package cmd

import (
	"context"
	"fmt"

	"github.com/ken-morel/shellsy/pkg"
)

// Version prints build and author metadata.
type Version struct{}

// Run executes the version command.
func (v *Version) Run(_ context.Context) error {
	fmt.Printf("%s %s\n", pkg.Name, pkg.Version)
	fmt.Println(pkg.Description)

	for _, author := range pkg.Author {
		fmt.Printf("  %s <%s>\n", author.Name, author.Email)
	}

	return nil
}

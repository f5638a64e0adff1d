// Package registry maps starter project class names to template descriptors.
package registry

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/tenheadedlion/contemplate/cli/create/builtin_templates"
	"github.com/tenheadedlion/contemplate/cli/util"
)

// SourceKind describes where a class template is stored.
type SourceKind int

const (
	// SourceEmbedded is a template bundled into the binary.
	SourceEmbedded SourceKind = iota
	// SourceDirectory is a template directory located in a search path.
	SourceDirectory
	// SourceArchive is a tar.gz template archive located in a search path.
	SourceArchive
	// SourceGit is a template stored in a remote git repository.
	SourceGit
)

// DefaultNamePattern renders a default destination directory name
// from the class name.
const DefaultNamePattern = "{{ .class }}-start"

// TemplateDescriptor describes one class template.
type TemplateDescriptor struct {
	// Name is a class name.
	Name string
	// Description is a short class description.
	Description string
	// Kind is a template source kind.
	Kind SourceKind
	// Location is an embedded FS subtree, a directory/archive path or
	// a git repository URL, depending on Kind.
	Location string
	// NamePattern is a template of a default destination directory name.
	NamePattern string
}

// UnknownClassError is returned when a requested class is not registered.
type UnknownClassError struct {
	// Class is a requested class name.
	Class string
	// Known is a list of registered class names.
	Known []string
}

// Error returns error message with the full list of known classes.
func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class %q, valid classes are: %s",
		e.Class, strings.Join(e.Known, ", "))
}

// builtin is a static class registry, filled once at startup and
// read-only afterwards.
var builtin = map[string]TemplateDescriptor{}

func init() {
	for _, name := range builtin_templates.Names {
		builtin[name] = TemplateDescriptor{
			Name:        name,
			Description: builtin_templates.Descriptions[name],
			Kind:        SourceEmbedded,
			Location:    path.Join("templates", name),
			NamePattern: DefaultNamePattern,
		}
	}
}

// searchPathDescriptor looks for a directory or an archive named after the
// class in searchPaths.
func searchPathDescriptor(class string, searchPaths []string) (TemplateDescriptor, bool) {
	for _, searchPath := range searchPaths {
		templatePath := path.Join(searchPath, class)
		if util.IsDir(templatePath) {
			return TemplateDescriptor{
				Name:        class,
				Kind:        SourceDirectory,
				Location:    templatePath,
				NamePattern: DefaultNamePattern,
			}, true
		}

		archivesToCheck := [2]string{
			path.Join(searchPath, class+".tgz"),
			path.Join(searchPath, class+".tar.gz"),
		}
		for _, archivePath := range archivesToCheck {
			if util.IsRegularFile(archivePath) {
				return TemplateDescriptor{
					Name:        class,
					Kind:        SourceArchive,
					Location:    archivePath,
					NamePattern: DefaultNamePattern,
				}, true
			}
		}
	}

	return TemplateDescriptor{}, false
}

// Resolve returns a template descriptor for the class. Lookup order:
// built-in classes, configured remotes, template search paths.
// The match is exact and case-sensitive. Resolve has no side effects.
func Resolve(class string, searchPaths []string,
	remotes map[string]string,
) (TemplateDescriptor, error) {
	if descriptor, found := builtin[class]; found {
		return descriptor, nil
	}

	if url, found := remotes[class]; found {
		return TemplateDescriptor{
			Name:        class,
			Description: url,
			Kind:        SourceGit,
			Location:    url,
			NamePattern: DefaultNamePattern,
		}, nil
	}

	if descriptor, found := searchPathDescriptor(class, searchPaths); found {
		return descriptor, nil
	}

	return TemplateDescriptor{}, &UnknownClassError{Class: class,
		Known: Known(searchPaths, remotes)}
}

// Known returns sorted names of all registered classes: built-in ones,
// configured remotes and templates found in search paths.
func Known(searchPaths []string, remotes map[string]string) []string {
	seen := map[string]bool{}
	known := []string{}

	for _, name := range builtin_templates.Names {
		known = append(known, name)
		seen[name] = true
	}
	for name := range remotes {
		if !seen[name] {
			known = append(known, name)
			seen[name] = true
		}
	}
	for _, name := range searchPathClasses(searchPaths) {
		if !seen[name] {
			known = append(known, name)
			seen[name] = true
		}
	}

	sort.Strings(known)
	return known
}

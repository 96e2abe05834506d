// Package branchname implements the <kind>/<author>/<description> branch naming convention.
package branchname

import (
	"regexp"
	"slices"
	"strings"

	bkerrors "branchkit.dev/branchkit/internal/errors"
)

// Kind is the leading segment of a conventional branch name
type Kind string

const (
	Feature Kind = "feature"
	Bugfix  Kind = "bugfix"
	Hotfix  Kind = "hotfix"
)

// Separator joins the segments of a branch name
const Separator = "/"

// EmptyDescriptionMessage is shown when the description prompt receives blank input
const EmptyDescriptionMessage = "Branch name should not be empty!"

// hotfixRegex matches hotfix/<author>/<description>
var hotfixRegex = regexp.MustCompile(`^hotfix/([^/]+)/(.+)$`)

// Kinds returns the selectable kinds in prompt order
func Kinds() []Kind {
	return []Kind{Feature, Bugfix, Hotfix}
}

// ParseKind converts a prompt answer into a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds(), k) {
		return "", bkerrors.NewValidationError("unknown branch kind %q", s)
	}
	return k, nil
}

// ChoosesBase reports whether the user picks the base branch for this kind.
// Hotfixes always start from the production branch.
func (k Kind) ChoosesBase() bool {
	return k == Feature || k == Bugfix
}

// Name is a parsed conventional branch name
type Name struct {
	Kind        Kind
	Author      string
	Description string
}

// String joins the segments with Separator
func (n Name) String() string {
	return string(n.Kind) + Separator + n.Author + Separator + n.Description
}

// ValidateDescription rejects empty or whitespace-only descriptions
func ValidateDescription(input string) error {
	if strings.TrimSpace(input) == "" {
		return bkerrors.NewValidationError(EmptyDescriptionMessage)
	}
	return nil
}

// Compose builds <kind>/<author>/<description>
func Compose(kind Kind, author, description string) (Name, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Name{}, err
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return Name{}, bkerrors.NewValidationError("branch author must not be empty")
	}
	if err := ValidateDescription(description); err != nil {
		return Name{}, err
	}
	return Name{Kind: kind, Author: author, Description: strings.TrimSpace(description)}, nil
}

// ParseHotfix parses a branch named hotfix/<author>/<description>
func ParseHotfix(branch string) (Name, error) {
	m := hotfixRegex.FindStringSubmatch(strings.TrimSpace(branch))
	if m == nil {
		return Name{}, bkerrors.NewValidationError("Not a valid hotfix branch name, use 'hotfix/xxx/xxx' format (current branch: %q)", branch)
	}
	return Name{Kind: Hotfix, Author: m[1], Description: m[2]}, nil
}

// BugfixCopy returns the sibling bugfix branch for a hotfix branch
func (n Name) BugfixCopy() Name {
	return Name{Kind: Bugfix, Author: n.Author, Description: n.Description}
}

// IsProtected reports whether branch contains any protected name (case-sensitive)
func IsProtected(branch string, protected []string) bool {
	for _, p := range protected {
		if strings.Contains(branch, p) {
			return true
		}
	}
	return false
}

// WithoutProtected drops protected branches, preserving order
func WithoutProtected(branches, protected []string) []string {
	result := make([]string, 0, len(branches))
	for _, b := range branches {
		if !IsProtected(b, protected) {
			result = append(result, b)
		}
	}
	return result
}

// Dedupe removes repeated names, keeping the first occurrence
func Dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	return result
}

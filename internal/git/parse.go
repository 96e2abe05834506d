package git

import (
	"regexp"
	"strings"
)

const reflogCheckoutMarker = "checkout: moving from "

// branchNameStripRegex matches characters that never appear in the branch names we offer back to the user
var branchNameStripRegex = regexp.MustCompile(`[^a-zA-Z0-9/_-]`)

// ParseBranchList parses `git branch` output into branch names.
// The current-branch marker (*) and worktree marker (+) are removed,
// detached HEAD entries are skipped.
func ParseBranchList(output string) []string {
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimPrefix(line, "+ ")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "(") {
			continue
		}
		branches = append(branches, line)
	}
	return branches
}

// ParseReflogCheckouts extracts checkout targets from reflog output, most recent first.
// Only the first limit checkout entries are considered; duplicates are kept.
// Accepts both the default reflog format and --format=%gs.
func ParseReflogCheckouts(output string, limit int) []string {
	var targets []string
	seen := 0
	for _, line := range strings.Split(output, "\n") {
		if limit > 0 && seen >= limit {
			break
		}
		idx := strings.Index(line, reflogCheckoutMarker)
		if idx < 0 {
			continue
		}
		seen++
		fields := strings.Fields(line[idx+len(reflogCheckoutMarker):])
		if len(fields) == 0 {
			continue
		}
		target := branchNameStripRegex.ReplaceAllString(fields[len(fields)-1], "")
		if target == "" {
			continue
		}
		targets = append(targets, target)
	}
	return targets
}

// ParseCommitList parses one commit hash per line, preserving git's order
func ParseCommitList(output string) []string {
	var commits []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `"`)
		if line == "" {
			continue
		}
		commits = append(commits, line)
	}
	return commits
}

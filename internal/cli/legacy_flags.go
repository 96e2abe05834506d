package cli

// legacyFlags maps spellings the flag parser cannot read to their long form.
// "-hc" would otherwise parse as -h -c.
var legacyFlags = map[string]string{
	"-hc": "--hotfix_copy",
}

// NormalizeArgs rewrites legacy flag spellings before cobra parses args.
// Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	result := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			result = append(result, args[i:]...)
			break
		}
		if replacement, ok := legacyFlags[arg]; ok {
			arg = replacement
		}
		result = append(result, arg)
	}
	return result
}

package cli

import "cqlex/internal/config"

// Flags holds command-line flags
type Flags struct {
	Output     string
	NameFilter string
	FuncPrefix string
	Canonical  bool
	Functions  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Output:     f.Output,
		NameFilter: f.NameFilter,
		FuncPrefix: f.FuncPrefix,
		Canonical:  f.Canonical,
		Functions:  f.Functions,
	}
}

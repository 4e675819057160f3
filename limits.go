package amoskeag

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Limits bounds the resources a single Compile/Evaluate call may
// consume (§5), enforced at the host boundary rather than inside the
// hot evaluation path: Compile checks source size and the
// allowed-symbol set once, and marshal.go's UnmarshalValue checks
// nesting depth, dictionary size, and array size while building the
// Value tree the host will evaluate against.
type Limits struct {
	MaxSourceBytes    int
	MaxNestingDepth   int
	MaxDictKeys       int
	MaxArrayElements  int
	MaxAllowedSymbols int
}

// DefaultLimits returns the bounds named in §5.
func DefaultLimits() Limits {
	return Limits{
		MaxSourceBytes:    10 * 1024 * 1024,
		MaxNestingDepth:   100,
		MaxDictKeys:       100_000,
		MaxArrayElements:  1_000_000,
		MaxAllowedSymbols: 10_000,
	}
}

// LoadLimits overrides DefaultLimits with any keys present in a YAML
// file at path (missing keys keep their default), using koanf the way
// the rest of the retrieval pack configures long-running services. A
// host embedding amoskeag as a library is not required to call this;
// DefaultLimits is used unless LoadLimits is explicitly invoked.
func LoadLimits(path string) (Limits, error) {
	limits := DefaultLimits()
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return limits, err
	}
	if k.Exists("max_source_bytes") {
		limits.MaxSourceBytes = k.Int("max_source_bytes")
	}
	if k.Exists("max_nesting_depth") {
		limits.MaxNestingDepth = k.Int("max_nesting_depth")
	}
	if k.Exists("max_dict_keys") {
		limits.MaxDictKeys = k.Int("max_dict_keys")
	}
	if k.Exists("max_array_elements") {
		limits.MaxArrayElements = k.Int("max_array_elements")
	}
	if k.Exists("max_allowed_symbols") {
		limits.MaxAllowedSymbols = k.Int("max_allowed_symbols")
	}
	return limits, nil
}

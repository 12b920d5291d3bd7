package types

// Rewrite records one rule firing on one source line.
type Rewrite struct {
	Rule     string
	Line     int
	Original string
	// Output is empty when the rule drops the line.
	Output string
	Drop   bool
}

// Result is the outcome of converting one circuit file.
type Result struct {
	Filename string
	Content  []byte
	Outputs  []string
	Rewrites []Rewrite
	Lines    int
	Dropped  int
}

// ConfigRule represents a per-rule entry of the configuration file.
type ConfigRule struct {
	Disabled bool `yaml:"disabled"`
}

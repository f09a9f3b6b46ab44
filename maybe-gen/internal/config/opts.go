package config

const DefaultConfigFile = "maybe-gen.yaml"

type OptsStruct struct {
	Pattern struct {
		Value string `positional-arg-name:"pattern" required:"1"`
	} `positional-args:"yes"`
	ConfigFile string `short:"c" long:"config" default:"maybe-gen.yaml" description:"Path to generator config file, relative to --dir"`
	Dir        string `short:"C" long:"dir" default:"." description:"Directory to load packages from"`
	DryRun     bool   `short:"n" long:"dry-run" description:"Print generated files to stdout instead of writing them"`
	Verbose    []bool `short:"v" long:"verbose" description:"Log progress to stderr, repeat for more detail"`
	Report     string `long:"report" description:"Write a YAML capability report to this file"`
}

var Opts OptsStruct

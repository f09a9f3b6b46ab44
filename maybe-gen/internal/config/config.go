package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/utils"
)

// AccessPolicies lists the access names accepted in config files and
// directives.
var AccessPolicies = []string{"checked", "unchecked-deref", "unchecked"}

type ConfigStruct struct {
	Output struct {
		Suffix string `ms:"suffix"`
	} `ms:"output"`
	Naming struct {
		PolicySuffix string `ms:"policy-suffix"`
		AliasPrefix  string `ms:"alias-prefix"`
		EmptyPrefix  string `ms:"empty-prefix"`
	} `ms:"naming"`
	Access string `ms:"access"`
}

// Parse reads the yaml file at path. A missing file is an error only if
// required is set; defaults apply otherwise.
func (c *ConfigStruct) Parse(path string, required bool) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetDefault("output.suffix", ".maybe.go")
	v.SetDefault("naming.policy-suffix", "Sentinel")
	v.SetDefault("naming.alias-prefix", "Maybe")
	v.SetDefault("naming.empty-prefix", "None")
	v.SetDefault("access", "checked")

	if err := v.ReadInConfig(); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			exception.Die(err)
		}
	}
	err := v.UnmarshalExact(c, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
		dc.TagName = "ms"
	})
	exception.Die(err)

	if filepath.Ext(c.Output.Suffix) != ".go" {
		exception.Throw("output.suffix %q must end with .go", c.Output.Suffix)
	}
	c.Access = AccessIdent(c.Access)
}

// AccessIdent maps an access name to the identifier of its Policy alias.
func AccessIdent(name string) string {
	for _, p := range AccessPolicies {
		if p == name {
			return utils.Capitalize(name)
		}
	}
	exception.Throw("unknown access policy %q, want one of %v", name, AccessPolicies)
	return ""
}

var Struct ConfigStruct

package report_dumper

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hsfzxjy/maybe/caps"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exported"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/uri"
)

type Entry struct {
	Caps     []string `yaml:"caps"`
	Trivial  bool     `yaml:"trivial"`
	Sentinel string   `yaml:"sentinel,omitempty"`
	Alias    string   `yaml:"alias,omitempty"`
	Access   string   `yaml:"access,omitempty"`
}

// ReportDumper writes the capabilities of every type to a YAML file keyed
// by type uri. Nothing is written when Path is empty.
type ReportDumper struct {
	Path    string
	Entries map[uri.Uri]Entry
}

func (d *ReportDumper) AddType(etype *exported.Type) {
	if d.Entries == nil {
		d.Entries = make(map[uri.Uri]Entry)
	}
	e := Entry{Trivial: etype.Caps.Has(caps.Trivial)}
	for _, c := range etype.Caps.Caps() {
		e.Caps = append(e.Caps, c.String())
	}
	if etype.HasSentinel {
		e.Sentinel = etype.Sentinel
		e.Alias = etype.AliasName()
		e.Access = etype.Access
	}
	d.Entries[etype.Uri()] = e
}

func (d *ReportDumper) Save() {
	if d.Path == "" {
		return
	}
	f, err := os.Create(d.Path)
	exception.Die(err)
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	exception.Die(enc.Encode(d.Entries))
	exception.Die(enc.Close())
}

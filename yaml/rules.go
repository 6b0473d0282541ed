// Package yaml loads filter rule overrides from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/offwiki"
	yaml "gopkg.in/yaml.v3"
)

// ParseRuleSpec decodes a rule file over the default rule set. Lists
// present in the document replace the default list; absent lists keep it.
// Unknown keys are rejected.
func ParseRuleSpec(b []byte) (offwiki.RuleSpec, error) {
	spec := offwiki.DefaultRuleSpec()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return offwiki.RuleSpec{}, offwiki.Errorf(offwiki.EINVALID, "parse rules: %v", err)
	}
	return spec, nil
}

// LoadRules reads the rule file at path and returns the resulting rules.
func LoadRules(path string) (*offwiki.FilterRules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	spec, err := ParseRuleSpec(b)
	if err != nil {
		return nil, err
	}
	return offwiki.NewFilterRules(spec), nil
}

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/keeperctl/internal/ctxlog"
	"github.com/vk/keeperctl/internal/fsutil"
)

// DefaultProfileName is used when the user selects no profile explicitly.
const DefaultProfileName = "default"

// Profile is one named keeper endpoint with its credential.
type Profile struct {
	Name  string `hcl:"name,label"`
	Host  string `hcl:"host"`
	Token string `hcl:"token,optional"`
}

// Set holds every profile loaded from the configuration directory.
type Set struct {
	profiles map[string]*Profile
}

// fileRoot decodes the top-level blocks of one configuration file.
type fileRoot struct {
	Profiles []*Profile `hcl:"profile,block"`
	Remain   hcl.Body   `hcl:",remain"`
}

// Load parses and merges every .hcl file under dir. A missing directory is
// not an error; it yields an empty set so a flag-only invocation still works.
func Load(ctx context.Context, dir string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)

	set := &Set{profiles: make(map[string]*Profile)}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Debug("Configuration directory does not exist, using empty profile set.", "dir", dir)
		return set, nil
	}

	files, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to scan configuration directory %s: %w", dir, err)
	}
	logger.Debug("Discovered configuration files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := envEvalContext()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode configuration file %s: %w", file, diags)
		}

		for _, p := range root.Profiles {
			if p.Host == "" {
				return nil, fmt.Errorf("profile %q in %s has an empty host", p.Name, file)
			}
			if _, exists := set.profiles[p.Name]; exists {
				return nil, fmt.Errorf("duplicate profile %q in %s", p.Name, file)
			}
			set.profiles[p.Name] = p
		}
	}

	logger.Debug("Profile set loaded.", "profile_count", len(set.profiles))
	return set, nil
}

// Select returns the named profile, or an error naming the candidates when
// it does not exist. Selecting from an empty set returns nil without error
// for the default name only, so the host can come from flags or environment.
func (s *Set) Select(name string) (*Profile, error) {
	if p, ok := s.profiles[name]; ok {
		return p, nil
	}
	if name == DefaultProfileName && len(s.profiles) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(s.profiles))
	for n := range s.profiles {
		names = append(names, n)
	}
	return nil, fmt.Errorf("unknown profile %q (have: %s)", name, strings.Join(names, ", "))
}

// Len reports how many profiles were loaded.
func (s *Set) Len() int {
	return len(s.profiles)
}

// envEvalContext exposes the process environment to HCL expressions as the
// `env` map variable.
func envEvalContext() *hcl.EvalContext {
	environ := os.Environ()
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	envVal := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		envVal = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
	}
}

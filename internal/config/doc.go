// Package config loads keeperctl profile configuration from HCL files.
//
// A profile names a keeper service endpoint and the credential to use with
// it. Every .hcl file in the configuration directory is parsed and merged;
// profile names must be unique across the set. Attribute expressions are
// evaluated with the process environment exposed as the `env` variable, so
// a profile can say `token = env.KEEPER_TOKEN` instead of embedding the
// secret in the file.
package config

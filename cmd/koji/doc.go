// Koji is a terminal recipe manager.
//
// Usage:
//
//	koji [--plain] [--config path] [--verbose|--quiet]
//	koji list [-q query] [-o table|json|yaml|toml]
//	koji show <id> [-o format]
//	koji compose [-o format]
//	koji ping [--all]
//	koji config init|show|validate
package main

// Package file stores DocChat settings in ~/.docchat/config.toml.
//
// The file holds one table per concern and is written with 0600
// permissions because it may carry an LLM API key or storage credentials:
//
//	[llm]
//	provider = "anthropic"
//	model = "claude-3-5-sonnet-latest"
//
//	[storage]
//	type = "local"
//
// Callers address values with flat dot-notation keys ("llm.model").
package file

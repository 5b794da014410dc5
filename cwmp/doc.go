// Package cwmp implements the extractor.Extractor for TR-069/CWMP device
// agents: recursive parameter-name discovery over a hook.Hook, followed by
// batched attribute/value retrieval and node construction.
package cwmp

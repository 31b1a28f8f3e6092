package importer

import (
	"carre/config"
	"carre/infras/llm"
	"carre/shared/constant"
)

// New picks the extraction strategy from configuration. The heuristic
// parser is the default; the AI parser needs an LLM endpoint configured.
func New(cfg *config.Config, client llm.Client) Extractor {
	if cfg.App.MenuParser == constant.MenuParserAI {
		return NewAI(client)
	}

	return NewHeuristic()
}

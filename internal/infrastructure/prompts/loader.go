package prompts

import (
	_ "embed"
)

//go:embed system.txt
var SystemPromptTemplate string

//go:embed moderation.txt
var ModerationPromptTemplate string

package service

import "fmt"

// TargetLanguage is the only language messages are translated into.
const TargetLanguage = "Japanese"

const instructionTemplate = `You translate Slack messages into %[1]s.

Translate the user's message into natural %[1]s. Keep every Slack formatting token exactly as written, in the same position around the translated words:
- bold *text*, italic _text_ and strikethrough ~text~ markers
- inline code ` + "`code`" + ` and code blocks ` + "```code```" + `; never translate text inside them
- links such as <https://example.com|label>; keep the URL unchanged and translate only the label
- user mentions such as <@U012AB3CD> and channel mentions such as <#C012AB3CD>
- emoji shortcodes such as :tada: or :+1:
- line breaks and list markers

Reply with the translated message only. Do not add explanations, notes, quotes or a preamble.`

// Instruction returns the system instruction sent with every translation.
func Instruction() string {
	return fmt.Sprintf(instructionTemplate, TargetLanguage)
}

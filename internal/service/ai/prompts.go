package ai

import "fmt"

// GetTranslateTextPrompt returns the system prompt for translating a single
// piece of content text (a scheme name, a description, a news body).
func GetTranslateTextPrompt(textType, language string) string {
	return fmt.Sprintf(`You are an expert translator for an agricultural information service. Translate the %s into the target language.

<context>
<content_type>%s</content_type>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Output ONLY the translated text, nothing else
3. Preserve the original meaning and tone
4. Keep scheme names, organization names and crop variety names recognizable to farmers
5. NEVER translate URLs or numbers
6. NO explanations, NO notes, NO markdown formatting
7. NO leading or trailing newlines
</instructions>`, textType, textType, language)
}

// GetTranslateListPrompt returns the system prompt for translating an ordered
// list of short items (benefits, eligibility steps, application steps).
// Items arrive one per line and must come back one per line, same order,
// same count.
func GetTranslateListPrompt(listType, language string) string {
	return fmt.Sprintf(`You are an expert translator for an agricultural information service. Translate each line of the %s list into the target language.

<context>
<content_type>%s</content_type>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. The input has one item per line. Output EXACTLY one translated item per line, in the same order
3. NEVER merge, split, add or drop lines
4. NEVER use bullet symbols or numbering (no *, -, 1., 2.)
5. NEVER translate URLs or numbers
6. NO explanations, NO markdown, NO leading or trailing newlines
</instructions>`, listType, listType, language)
}

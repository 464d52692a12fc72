// Package provider holds the prompt and generation constants shared by all
// model adapters, so every provider asks the same questions the same way.
package provider

import "fmt"

// SystemPersona is the system instruction sent with every translation call.
const SystemPersona = "You are a helpful, witty, and culturally aware translation assistant. Your personality is playful."

// Image generation parameters.
const (
	ImageCount       = 1
	ImageAspectRatio = "4:3"
	ImageMIMEType    = "image/jpeg"
)

// TranslationPrompt builds the translation instruction for one input text.
func TranslationPrompt(input string) string {
	return fmt.Sprintf(`You are a world-class translator and linguist specializing in Internet slang, memes (Gen Z/Alpha), pop culture, and proper names.

Analyze the following input text: %q

Step 1: Analysis
Check the input for spelling errors, grammar mistakes, ambiguity, or if the phrasing is too stiff/formal where it shouldn't be.
If you find issues, create a 'corrected' version.

Step 2: Translation
Using the *corrected* version (if applicable), perform the translation.

Rules:
1. If the input is NOT Chinese: Translate it to Chinese.
2. If the input IS Chinese: Provide exactly 10 English translations. These 10 must vary significantly: include literal translations, formal usage, and most importantly, current internet slang/memes equivalents.
3. Context: specificially identify if the term is a "Netizen Hot Stem" (network meme), a celebrity nickname, or a specific cultural reference. Explain this in 'culturalContext'.
4. Examples: Provide 3 bilingual example sentences.
5. Image Prompt: Create a description for an image that visually explains the meaning (a schematic, a funny situation, or a literal representation of the metaphor).`, input)
}

// IllustrationPrompt wraps a translation's image description in the house
// art direction.
func IllustrationPrompt(description string) string {
	return fmt.Sprintf("A clear, high-quality conceptual illustration in a playful 3D cartoon style or vector art (reminiscent of Hanna-Barbera cartoons), explaining the concept: %s. Bright colors, minimalist background.", description)
}

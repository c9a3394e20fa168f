package prompt

// GetExtractionPrompt tells a vision model to act as a plain OCR engine.
func GetExtractionPrompt() string {
	return `You are an OCR engine. Transcribe all text visible in the image exactly as written, preserving line breaks.

Requirements:
- Output only the transcribed text (no markdown, no commentary, no code fences).
- Do not translate, summarize or correct spelling.
- Keep URLs, phone numbers and sender names exactly as shown.
- If the image contains no readable text, output nothing.`
}

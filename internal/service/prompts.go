package service

import "fmt"

// Prompt templates for the Gemini-backed features. The JSON payloads are
// rendered by the callers with json.MarshalIndent to keep the model output
// grounded in real numbers.

func discoverInsightPrompt(keyword, sampleJSON string) string {
	return fmt.Sprintf(`You are a senior YouTube SEO strategist.

Analyze this search results snapshot for keyword: %q

DATA (JSON list):
%s

In 5 bullet points, answer:
- How competitive is this keyword (low/medium/high) and why?
- What style of videos are winning (tutorials, shorts, reviews, etc.)?
- What angle would you recommend for a new video to stand out?
- Suggested ideal video length.
- Any quick-win ideas for title hooks.

Answer concisely in markdown bullet points only.
`, keyword, sampleJSON)
}

func optimizeMetadataPrompt(payloadJSON string) string {
	return fmt.Sprintf(`You are a senior YouTube SEO strategist.

Improve this video package for both Search and Recommendation.

DATA (JSON):
%s

Return ONLY valid JSON with this exact structure:
{
  "titles": ["title1", "title2", "title3"],
  "description": "rewritten description",
  "tags": ["tag1", "tag2", "tag3"],
  "hashtags": ["#tag1", "#tag2", "#tag3"]
}
`, payloadJSON)
}

func generatorPrompt(topic string) string {
	return fmt.Sprintf(`Generate a full set of YouTube metadata for a video about this topic:

TOPIC: %q

Please provide:
1. Title: 5 catchy, SEO-friendly title options (under 70 characters).
2. Description: A sample 2-paragraph video description that includes a call-to-action.
3. Tags: A comma-separated list of 15-20 relevant tags.
4. Hashtags: 3-5 relevant hashtags.
`, topic)
}

func tagFinderPrompt(topic string) string {
	return fmt.Sprintf(`You are a YouTube SEO assistant.

Generate 25 SEO-friendly YouTube tags for a video about: %q.

Return them as a single comma-separated line only, no explanation.
`, topic)
}

func hashtagFinderPrompt(topic string) string {
	return fmt.Sprintf(`You are a YouTube SEO assistant.

Generate 15 short, brand-safe YouTube hashtags for a video about: %q.

Return them as a single space-separated line like: #tag1 #tag2 #tag3
`, topic)
}

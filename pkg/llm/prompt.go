package llm

import (
	"fmt"
	"strings"
)

// maxTranscriptChars caps the episode text sent to the model. Truncation,
// not summarization - the tail of long transcripts is dropped.
const maxTranscriptChars = 4500

// extractionPromptTemplate requests a strict JSON object with the full
// intelligence field set. Placeholders: podcast name, focus area, episode
// title, extraction emphasis, transcript.
const extractionPromptTemplate = `You are analyzing a podcast episode for executive intelligence extraction.

**Podcast Context:**
- Podcast: %s
- Focus Area: %s
- Episode Title: %s

**Focus Emphasis:**
%s

**Episode Content (first 4,500 characters):**
%s

---

Create a comprehensive analysis following executive communication best practices:

1. START WITH HEADLINE: Lead with the most important takeaway
2. DESIGN FOR SKIMMING: Use clear structure and bold key points
3. ANSWER OBJECTIONS: Address potential concerns upfront
4. SHOW IMPACT: Quantify business implications where possible

Provide your analysis in this exact JSON format (NO markdown, NO code blocks, just clean JSON):
{
    "headline_takeaway": "One powerful sentence capturing the most important insight from this episode",
    "executive_summary": "A comprehensive 4-6 sentence summary that starts with the headline version, then provides crucial context. Focus on business impact, strategic implications, and actionable insights. Write for executives who scan quickly - each sentence should add clear value.",
    "strategic_implications": ["3-4 high-level business or industry implications that executives should understand"],
    "technical_developments": ["Specific technical advances, tools, frameworks, or breakthroughs mentioned with business context"],
    "market_dynamics": ["Business trends, competitive insights, market shifts, or economic implications discussed"],
    "key_people": ["Notable people mentioned in format: 'Name (Role at Company) - Key contribution or quote'"],
    "companies_mentioned": ["Companies discussed with specific context: 'Company Name - What was said about them'"],
    "predictions": ["Future predictions with timelines and confidence indicators where mentioned"],
    "actionable_insights": ["4-6 specific, implementable takeaways that listeners can act on"],
    "risk_factors": ["Potential challenges, risks, or concerns mentioned that could impact strategy"],
    "quantified_impact": ["Any specific numbers, percentages, timelines, or measurable outcomes mentioned"],
    "bottom_line": "One sentence that captures the core message: what should executives remember from this episode?",
    "importance_score": 8,
    "guest_expertise": "Brief description of the main speaker's background and why their perspective matters"
}

CRITICAL REQUIREMENTS:
- importance_score: Rate 1-10 based on strategic value, novelty, and actionability
- Return ONLY the JSON object, no additional text
- If information for a field is not available, use empty array [] or empty string ""
- Focus on BUSINESS VALUE and ACTIONABLE INSIGHTS over general information
`

// buildExtractionPrompt formats the extraction prompt, truncating the
// transcript to the character budget
func buildExtractionPrompt(transcript, podcastName, episodeTitle, focusArea, emphasis string) string {
	if len(transcript) > maxTranscriptChars {
		transcript = transcript[:maxTranscriptChars]
	}
	if emphasis == "" {
		emphasis = "Focus on key insights and actionable takeaways"
	}
	return fmt.Sprintf(extractionPromptTemplate, podcastName, focusArea, episodeTitle, emphasis, transcript)
}

// stripCodeFence removes a surrounding markdown code fence if present,
// some models wrap JSON despite instructions
func stripCodeFence(s string) string {
	cleaned := strings.TrimSpace(s)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	if idx := strings.Index(cleaned, "\n"); idx != -1 {
		cleaned = cleaned[idx+1:]
	}
	if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
		cleaned = cleaned[:idx]
	}
	return strings.TrimSpace(cleaned)
}
